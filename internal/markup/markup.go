// Package markup reads rendered timeline markup back into card records and
// adjusts card classes.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Detail is one bullet of a card with the links it contains.
type Detail struct {
	Text  string
	Links []string
}

// Card is a timeline card as found in container markup.
type Card struct {
	Index   int
	Class   string
	Label   string
	Date    string
	Title   string
	Version string
	Details []Detail
	Visible bool
}

// Failure is the inline failure message, if the container holds one.
func Failure(container string) string {
	nodes, err := parseFragment(container)
	if err != nil {
		return ""
	}
	for _, n := range nodes {
		if found := findByClass(n, "timeline-error"); found != nil {
			return strings.TrimSpace(textContent(found))
		}
	}
	return ""
}

// ParseCards returns the cards of container in document order.
func ParseCards(container string) ([]Card, error) {
	nodes, err := parseFragment(container)
	if err != nil {
		return nil, err
	}
	var cards []Card
	for _, n := range nodes {
		walk(n, func(node *nethtml.Node) bool {
			if !hasClass(node, "timeline-item") {
				return true
			}
			cards = append(cards, readCard(node))
			return false
		})
	}
	return cards, nil
}

// MarkVisible adds the "visible" class to every card whose index satisfies
// visible and returns the re-serialized container.
func MarkVisible(container string, visible func(int) bool) (string, error) {
	nodes, err := parseFragment(container)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		walk(n, func(node *nethtml.Node) bool {
			if !hasClass(node, "timeline-item") {
				return true
			}
			if idx, ok := dataIndex(node); ok && visible(idx) && !hasClass(node, "visible") {
				setAttr(node, "class", attr(node, "class")+" visible")
			}
			return false
		})
		if err := nethtml.Render(&b, n); err != nil {
			return "", fmt.Errorf("render container: %w", err)
		}
	}
	return b.String(), nil
}

func parseFragment(container string) ([]*nethtml.Node, error) {
	context := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := nethtml.ParseFragment(strings.NewReader(container), context)
	if err != nil {
		return nil, fmt.Errorf("parse container: %w", err)
	}
	return nodes, nil
}

func readCard(item *nethtml.Node) Card {
	card := Card{Index: -1, Visible: hasClass(item, "visible")}
	if idx, ok := dataIndex(item); ok {
		card.Index = idx
	}
	walk(item, func(n *nethtml.Node) bool {
		switch {
		case hasClass(n, "tag"):
			card.Label = strings.TrimSpace(textContent(n))
			for _, c := range strings.Fields(attr(n, "class")) {
				if strings.HasPrefix(c, "tag-") {
					card.Class = c
				}
			}
			return false
		case hasClass(n, "date"):
			card.Date = strings.TrimSpace(textContent(n))
			return false
		case hasClass(n, "version"):
			card.Version = strings.TrimSpace(textContent(n))
			return false
		case hasClass(n, "card-title"):
			card.Title = strings.TrimSpace(textContent(n))
			return false
		case n.Type == nethtml.ElementNode && n.DataAtom == atom.Li:
			card.Details = append(card.Details, readDetail(n))
			return false
		}
		return true
	})
	return card
}

func readDetail(li *nethtml.Node) Detail {
	d := Detail{Text: strings.TrimSpace(textContent(li))}
	walk(li, func(n *nethtml.Node) bool {
		if n.Type == nethtml.ElementNode && n.DataAtom == atom.A {
			if href := attr(n, "href"); href != "" {
				d.Links = append(d.Links, href)
			}
			return false
		}
		return true
	})
	return d
}

// walk visits n and its descendants depth-first. fn returning false skips
// the node's children.
func walk(n *nethtml.Node, fn func(*nethtml.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findByClass(n *nethtml.Node, class string) *nethtml.Node {
	var found *nethtml.Node
	walk(n, func(node *nethtml.Node) bool {
		if found != nil {
			return false
		}
		if hasClass(node, class) {
			found = node
			return false
		}
		return true
	})
	return found
}

func textContent(n *nethtml.Node) string {
	var b strings.Builder
	walk(n, func(node *nethtml.Node) bool {
		if node.Type == nethtml.TextNode {
			b.WriteString(node.Data)
		}
		return true
	})
	return b.String()
}

func hasClass(n *nethtml.Node, class string) bool {
	if n.Type != nethtml.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func dataIndex(n *nethtml.Node) (int, bool) {
	raw := attr(n, "data-index")
	if raw == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return idx, true
}

func attr(n *nethtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *nethtml.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, nethtml.Attribute{Key: key, Val: val})
}
