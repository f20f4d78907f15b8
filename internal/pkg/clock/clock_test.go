package clock_test

import (
	"testing"
	"time"

	"coffeeshop/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestNewFixed_AlwaysReturnsSameInstantInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, loc)

	c := clock.NewFixed(at)

	assert.True(t, c.Now().Equal(at))
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, c.Now(), c.Now())
}

func TestNewSystem_ReturnsCurrentTimeInUTC(t *testing.T) {
	before := time.Now()
	now := clock.NewSystem().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
}
