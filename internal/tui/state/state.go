package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// BodyHeight is the number of timeline lines left after the chrome.
func BodyHeight(height, chromeLines int) int {
	if height <= 0 {
		return 20
	}
	body := height - chromeLines
	if body < 3 {
		body = 3
	}
	return body
}

// Span is the line range a card occupies in the scrollable body.
type Span struct {
	Top    int
	Height int
}

func (s Span) Bottom() int {
	return s.Top + s.Height
}

// Layout stacks cards of the given heights, separated by gap blank lines.
func Layout(heights []int, gap int) []Span {
	spans := make([]Span, 0, len(heights))
	top := 0
	for _, h := range heights {
		spans = append(spans, Span{Top: top, Height: h})
		top += h + gap
	}
	return spans
}

// TotalLines is the body length covered by spans.
func TotalLines(spans []Span) int {
	if len(spans) == 0 {
		return 0
	}
	return spans[len(spans)-1].Bottom()
}

// ScrollToShow returns the smallest scroll change that keeps span inside the
// viewport starting at top.
func ScrollToShow(span Span, top, height int) int {
	if height <= 0 {
		return top
	}
	if span.Top < top {
		return span.Top
	}
	if span.Bottom() > top+height {
		next := span.Bottom() - height
		if next > span.Top {
			next = span.Top
		}
		return next
	}
	return top
}

// ClampScroll keeps top within [0, total-height].
func ClampScroll(top, total, height int) int {
	maxTop := total - height
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}

// CardAtLine returns the index of the card covering line, or -1.
func CardAtLine(spans []Span, line int) int {
	for i, s := range spans {
		if line >= s.Top && line < s.Bottom() {
			return i
		}
	}
	return -1
}
