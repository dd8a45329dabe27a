package reveal

// DefaultThreshold is the visible fraction at which a card is revealed.
const DefaultThreshold = 0.1

// Animator watches rendered cards by index. A card is revealed the first time
// its intersection ratio reaches the threshold and is never watched again.
type Animator struct {
	threshold float64
	count     int
	latch     *Latch[int]
	onReveal  func(int)
}

func NewAnimator(threshold float64) *Animator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Animator{threshold: threshold, latch: NewLatch[int]()}
}

// OnReveal registers a callback invoked once per revealed card.
func (a *Animator) OnReveal(fn func(int)) {
	a.onReveal = fn
}

// Observe re-arms the animator for a fresh render of n cards.
func (a *Animator) Observe(n int) {
	if n < 0 {
		n = 0
	}
	a.count = n
	a.latch.Reset()
}

// Intersect feeds one intersection observation and reports whether it
// revealed the card.
func (a *Animator) Intersect(index int, ratio float64) bool {
	if index < 0 || index >= a.count {
		return false
	}
	return a.latch.Notify(index, ratio >= a.threshold, a.onReveal)
}

func (a *Animator) Revealed(index int) bool {
	return a.latch.Fired(index)
}

// Watching reports whether the card is still waiting for its first reveal.
func (a *Animator) Watching(index int) bool {
	return index >= 0 && index < a.count && !a.latch.Fired(index)
}

func (a *Animator) Count() int {
	return a.count
}

// Ratio is the visible fraction of a span [top, top+height) inside the
// viewport [viewTop, viewTop+viewHeight).
func Ratio(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	start := max(top, viewTop)
	end := min(top+height, viewTop+viewHeight)
	if end <= start {
		return 0
	}
	return float64(end-start) / float64(height)
}
