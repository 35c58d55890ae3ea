// Package slideshow owns the slide cursor and its navigation.
package slideshow

// SlideCount is the number of slides in the wrapped deck.
const SlideCount = 10

// Change describes one cursor transition.
type Change struct {
	From int
	To   int
}

// Listener is notified synchronously after every cursor change.
type Listener func(Change)

// Controller holds the cursor into a fixed ring of slides. The cursor is
// always in [0, Len()).
type Controller struct {
	n         int
	cursor    int
	listeners []Listener
}

// New returns a controller over n slides positioned at slide 0. Values of n
// below 1 are treated as 1.
func New(n int) *Controller {
	if n < 1 {
		n = 1
	}
	return &Controller{n: n}
}

// Len returns the number of slides.
func (c *Controller) Len() int {
	return c.n
}

// Cursor returns the index of the visible slide.
func (c *Controller) Cursor() int {
	return c.cursor
}

// IsActive reports whether slide i is the visible slide.
func (c *Controller) IsActive(i int) bool {
	return i == c.cursor
}

// Advance moves to the next slide, wrapping past the last one.
func (c *Controller) Advance() {
	c.moveTo((c.cursor + 1) % c.n)
}

// Retreat moves to the previous slide, wrapping before the first one.
func (c *Controller) Retreat() {
	c.moveTo((c.cursor - 1 + c.n) % c.n)
}

// OnChange registers fn to run after each cursor change.
func (c *Controller) OnChange(fn Listener) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) moveTo(next int) {
	change := Change{From: c.cursor, To: next}
	c.cursor = next
	for _, fn := range c.listeners {
		fn(change)
	}
}
