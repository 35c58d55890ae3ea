package slideshow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positioned(t *testing.T, start int) *Controller {
	t.Helper()
	c := New(SlideCount)
	for i := 0; i < start; i++ {
		c.Advance()
	}
	require.Equal(t, start, c.Cursor())
	return c
}

func TestNewStartsAtZero(t *testing.T) {
	c := New(SlideCount)
	assert.Equal(t, 0, c.Cursor())
	assert.Equal(t, SlideCount, c.Len())
	assert.True(t, c.IsActive(0))
}

func TestNewClampsLength(t *testing.T) {
	c := New(0)
	assert.Equal(t, 1, c.Len())
	c.Advance()
	assert.Equal(t, 0, c.Cursor())
	c.Retreat()
	assert.Equal(t, 0, c.Cursor())
}

func TestAdvanceWraps(t *testing.T) {
	c := positioned(t, SlideCount-1)
	c.Advance()
	assert.Equal(t, 0, c.Cursor())
}

func TestRetreatWraps(t *testing.T) {
	c := New(SlideCount)
	c.Retreat()
	assert.Equal(t, SlideCount-1, c.Cursor())
}

func TestAdvanceCycleCloses(t *testing.T) {
	for start := 0; start < SlideCount; start++ {
		c := positioned(t, start)
		for i := 0; i < SlideCount; i++ {
			c.Advance()
		}
		assert.Equal(t, start, c.Cursor(), "start %d", start)
	}
}

func TestAdvanceRetreatInverse(t *testing.T) {
	for start := 0; start < SlideCount; start++ {
		c := positioned(t, start)
		c.Advance()
		c.Retreat()
		assert.Equal(t, start, c.Cursor(), "start %d", start)

		c.Retreat()
		c.Advance()
		assert.Equal(t, start, c.Cursor(), "start %d", start)
	}
}

func TestExactlyOneActive(t *testing.T) {
	c := New(SlideCount)
	steps := []func(){c.Advance, c.Advance, c.Retreat, c.Retreat, c.Retreat, c.Advance}
	for step, move := range steps {
		move()
		active := 0
		for i := 0; i < SlideCount; i++ {
			if c.IsActive(i) {
				active++
				assert.Equal(t, c.Cursor(), i)
			}
		}
		assert.Equal(t, 1, active, "step %d", step)
	}
	assert.False(t, c.IsActive(-1))
	assert.False(t, c.IsActive(SlideCount))
}

func TestOnChangeNotifies(t *testing.T) {
	c := New(3)
	var changes []Change
	c.OnChange(func(ch Change) { changes = append(changes, ch) })
	c.OnChange(nil)

	c.Advance()
	c.Retreat()
	c.Retreat()

	assert.Equal(t, []Change{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 2}}, changes)
}

func TestLogListener(t *testing.T) {
	assert.Nil(t, LogListener(nil))
	assert.Nil(t, NewLogger(nil))

	var buf bytes.Buffer
	c := New(SlideCount)
	c.OnChange(LogListener(NewLogger(&buf)))
	c.Retreat()

	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=slide_change"), out)
	assert.Contains(t, out, "from=0")
	assert.Contains(t, out, "to=9")
}
