package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/timeline-cli/internal/timeline"
)

func sampleContainer() string {
	return timeline.Render([]timeline.Entry{
		{Date: "2025-03-01", Type: "feature", Title: "Search", Version: "v2.0", Details: []string{"see https://example.com/search", "faster"}},
		{Date: "2025-02-01", Type: "mystery", Title: "Misc"},
	})
}

func TestParseCards_RecoversRenderedFields(t *testing.T) {
	cards, err := ParseCards(sampleContainer())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "tag-feature", first.Class)
	assert.Equal(t, "FEATURE", first.Label)
	assert.Equal(t, "2025-03-01", first.Date)
	assert.Equal(t, "Search", first.Title)
	assert.Equal(t, "v2.0", first.Version)
	require.Len(t, first.Details, 2)
	assert.Equal(t, "see https://example.com/search", first.Details[0].Text)
	assert.Equal(t, []string{"https://example.com/search"}, first.Details[0].Links)
	assert.False(t, first.Visible)

	second := cards[1]
	assert.Equal(t, "tag-default", second.Class)
	assert.Equal(t, "MYSTERY", second.Label)
	assert.Empty(t, second.Version)
	assert.Empty(t, second.Details)
}

func TestParseCards_Empty(t *testing.T) {
	cards, err := ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestMarkVisible(t *testing.T) {
	out, err := MarkVisible(sampleContainer(), func(i int) bool { return i == 1 })
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "timeline-item visible"))

	cards, err := ParseCards(out)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.False(t, cards[0].Visible)
	assert.True(t, cards[1].Visible)

	again, err := MarkVisible(out, func(int) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(again, " visible\""))
}

func TestFailure(t *testing.T) {
	assert.Equal(t, "boom", Failure(`<div class="timeline-error">boom</div>`))
	assert.Empty(t, Failure(sampleContainer()))
}
