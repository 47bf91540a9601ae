package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	t.Run("resend_disabled_until_zero", func(t *testing.T) {
		c := NewCountdown(3)
		c.Start()
		assert.False(t, c.CanResend())
		assert.Equal(t, 3, c.SecondsLeft())

		c.Tick()
		c.Tick()
		assert.False(t, c.CanResend())
		assert.Equal(t, 1, c.SecondsLeft())

		c.Tick()
		assert.True(t, c.CanResend())
		assert.Equal(t, 0, c.SecondsLeft())
	})

	t.Run("start_resets_to_initial", func(t *testing.T) {
		c := NewCountdown(34)
		c.Start()
		for i := 0; i < 34; i++ {
			c.Tick()
		}
		assert.True(t, c.CanResend())

		c.Start()
		assert.False(t, c.CanResend())
		assert.Equal(t, 34, c.SecondsLeft())
	})

	t.Run("tick_safe_at_zero", func(t *testing.T) {
		c := NewCountdown(1)
		c.Tick()
		assert.Equal(t, 0, c.SecondsLeft())
		assert.True(t, c.CanResend())
	})

	t.Run("unstarted_allows_resend", func(t *testing.T) {
		c := NewCountdown(34)
		assert.True(t, c.CanResend())
	})
}
