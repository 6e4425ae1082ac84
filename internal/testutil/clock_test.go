package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_HoldsUntilMoved(t *testing.T) {
	start := time.Date(2020, time.July, 5, 9, 30, 0, 0, time.UTC)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	c.Advance(48 * time.Hour)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())

	later := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestFixedClock_DateAfter(t *testing.T) {
	c := ClockOn(2020, time.July, 5)

	assert.Equal(t, "07052020", c.DateAfter(0))
	assert.Equal(t, "07062020", c.DateAfter(1))
	assert.Equal(t, "07042020", c.DateAfter(-1))
	assert.Equal(t, "08042020", c.DateAfter(30))
}

func TestFixedSessionGenerator(t *testing.T) {
	g := NewFixedSessionGenerator("abc")
	assert.Equal(t, "abc", g.Generate())
	assert.Equal(t, "abc", g.Generate())

	assert.Equal(t, "test-session", NewFixedSessionGenerator("").Generate())
}
