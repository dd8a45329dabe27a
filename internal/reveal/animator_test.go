package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimator_RevealsOnceAtThreshold(t *testing.T) {
	a := NewAnimator(DefaultThreshold)
	a.Observe(3)

	assert.True(t, a.Watching(1))
	assert.False(t, a.Intersect(1, 0.05))
	assert.False(t, a.Revealed(1))

	assert.True(t, a.Intersect(1, 0.1))
	assert.True(t, a.Revealed(1))
	assert.False(t, a.Watching(1))

	// scrolled out and back in
	assert.False(t, a.Intersect(1, 0))
	assert.True(t, a.Revealed(1))
	assert.False(t, a.Intersect(1, 1))
	assert.True(t, a.Revealed(1))
}

func TestAnimator_OnRevealFiresOncePerCard(t *testing.T) {
	a := NewAnimator(0)
	var got []int
	a.OnReveal(func(i int) { got = append(got, i) })
	a.Observe(2)

	a.Intersect(0, 0.5)
	a.Intersect(0, 0.9)
	a.Intersect(1, 0.2)

	assert.Equal(t, []int{0, 1}, got)
}

func TestAnimator_ObserveRearms(t *testing.T) {
	a := NewAnimator(DefaultThreshold)
	a.Observe(2)
	a.Intersect(0, 1)
	assert.True(t, a.Revealed(0))

	a.Observe(5)
	assert.False(t, a.Revealed(0))
	assert.True(t, a.Watching(4))
	assert.False(t, a.Intersect(5, 1), "index outside the render is ignored")
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio(2, 4, 0, 10))
	assert.Equal(t, 0.5, Ratio(8, 4, 0, 10))
	assert.Equal(t, 0.0, Ratio(12, 4, 0, 10))
	assert.Equal(t, 0.25, Ratio(0, 4, 3, 10))
	assert.Equal(t, 0.0, Ratio(0, 0, 0, 10))
}

func TestLatch(t *testing.T) {
	l := NewLatch[string]()
	assert.False(t, l.Notify("a", false, nil))
	assert.True(t, l.Notify("a", true, nil))
	assert.False(t, l.Notify("a", true, nil))
	assert.True(t, l.Fired("a"))
	l.Reset()
	assert.False(t, l.Fired("a"))
}
