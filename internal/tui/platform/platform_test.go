package platform

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/glabrego/timeline-cli/internal/markup"
)

func TestValidateLinkURL(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "https", raw: "https://example.com/changelog", want: "https://example.com/changelog"},
		{name: "trimmed", raw: "  http://example.com/a?b=1 ", want: "http://example.com/a?b=1"},
		{name: "empty", raw: "   ", wantErr: "no link"},
		{name: "scheme", raw: "javascript:alert(1)", wantErr: "unsupported URL scheme"},
		{name: "host", raw: "https://", wantErr: "invalid URL host"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateLinkURL(tc.raw)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFirstLink(t *testing.T) {
	card := markup.Card{Details: []markup.Detail{
		{Text: "plain"},
		{Text: "see https://a.example/x and https://b.example", Links: []string{"https://a.example/x", "https://b.example"}},
	}}
	got, ok := FirstLink(card)
	if !ok || got != "https://a.example/x" {
		t.Fatalf("FirstLink = (%q, %v)", got, ok)
	}
	if _, ok := FirstLink(markup.Card{}); ok {
		t.Fatal("expected no link for card without details")
	}
}

func TestBrowserCommand(t *testing.T) {
	const link = "https://example.com/notes"
	if name, args := browserCommand("darwin", link); name != "open" || !reflect.DeepEqual(args, []string{link}) {
		t.Fatalf("darwin: got %q %v", name, args)
	}
	if name, args := browserCommand("windows", link); name != "rundll32" || args[len(args)-1] != link {
		t.Fatalf("windows: got %q %v", name, args)
	}
	if name, _ := browserCommand("freebsd", link); name != "xdg-open" {
		t.Fatalf("fallback: got %q", name)
	}
}

func TestSelectClipboardCommand_PrefersFirstAvailable(t *testing.T) {
	available := map[string]bool{"xclip": true, "wl-copy": true}
	lookup := func(bin string) (string, error) {
		if available[bin] {
			return "/usr/bin/" + bin, nil
		}
		return "", errors.New("not found")
	}
	got, err := selectClipboardCommand(lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != "xclip" {
		t.Fatalf("expected xclip before wl-copy, got %v", got)
	}

	_, err = selectClipboardCommand(func(string) (string, error) { return "", errors.New("not found") })
	if err == nil {
		t.Fatal("expected error when no clipboard command is available")
	}
}
