// Package reveal tracks the one-shot entrance state of rendered timeline cards.
package reveal

// Latch fires at most once per key, the first time its condition holds.
type Latch[K comparable] struct {
	fired map[K]struct{}
}

func NewLatch[K comparable]() *Latch[K] {
	return &Latch[K]{fired: make(map[K]struct{})}
}

// Notify reports whether this call fired the latch for key. fn, when non-nil,
// runs only on that call.
func (l *Latch[K]) Notify(key K, cond bool, fn func(K)) bool {
	if !cond {
		return false
	}
	if _, done := l.fired[key]; done {
		return false
	}
	l.fired[key] = struct{}{}
	if fn != nil {
		fn(key)
	}
	return true
}

func (l *Latch[K]) Fired(key K) bool {
	_, ok := l.fired[key]
	return ok
}

func (l *Latch[K]) Reset() {
	clear(l.fired)
}
