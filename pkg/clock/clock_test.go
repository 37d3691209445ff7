package clock_test

import (
	"testing"
	"time"

	"github.com/neeleshs/listara/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestWall(t *testing.T) {
	c := clock.New()

	now := c.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestMock(t *testing.T) {
	t0 := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := clock.NewMock(t0)

	assert.Equal(t, t0, c.Now())
	assert.Equal(t, t0, c.Now()) // Frozen until driven.

	c.Advance(31 * 24 * time.Hour)
	assert.Equal(t, t0.Add(31*24*time.Hour), c.Now())

	c.Set(t0)
	assert.Equal(t, t0, c.Now())
}
