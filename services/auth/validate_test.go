package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidLocalMobile10(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid", "9171234567", true},
		{"wrong_prefix", "8171234567", false},
		{"too_short", "917123456", false},
		{"too_long", "91712345678", false},
		{"with_letters", "917123456a", false},
		{"empty", "", false},
		{"with_country_code", "639171234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidLocalMobile10(tt.input))
		})
	}
}

func TestCommitPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "9171234567", "9171234567"},
		{"with_spaces", "917 123 4567", "9171234567"},
		{"with_dashes", "917-123-4567", "9171234567"},
		{"truncates_to_ten", "91712345678901", "9171234567"},
		{"strips_plus", "+639171234567", "6391712345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitPhone(tt.input))
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(time.January, 2024))
	assert.Equal(t, 29, DaysIn(time.February, 2024))
	assert.Equal(t, 28, DaysIn(time.February, 2023))
	assert.Equal(t, 30, DaysIn(time.April, 2024))
	assert.Equal(t, 31, DaysIn(time.December, 2024))
}

func TestClampDOB(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("day_clamped_to_month_length", func(t *testing.T) {
		m, d, y := ClampDOB(time.February, 31, 2023, now)
		assert.Equal(t, time.February, m)
		assert.Equal(t, 28, d)
		assert.Equal(t, 2023, y)
	})

	t.Run("future_date_clamped_to_today", func(t *testing.T) {
		m, d, y := ClampDOB(time.December, 25, 2025, now)
		assert.Equal(t, time.June, m)
		assert.Equal(t, 15, d)
		assert.Equal(t, 2025, y)
	})

	t.Run("valid_date_untouched", func(t *testing.T) {
		m, d, y := ClampDOB(time.March, 10, 1990, now)
		assert.Equal(t, time.March, m)
		assert.Equal(t, 10, d)
		assert.Equal(t, 1990, y)
	})
}

func TestValidateDOB(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month time.Month
		day   int
		year  int
		ok    bool
	}{
		{"valid", time.March, 10, 1990, true},
		{"today", time.June, 15, 2025, true},
		{"future", time.June, 16, 2025, false},
		{"feb_30", time.February, 30, 2000, false},
		{"leap_feb_29", time.February, 29, 2024, true},
		{"nonleap_feb_29", time.February, 29, 2023, false},
		{"month_zero", time.Month(0), 10, 1990, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDOB(tt.month, tt.day, tt.year, now)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("secret1", "secret1"))
	assert.Error(t, validatePassword("short", "short"))
	assert.Error(t, validatePassword("abcdef", "abcdeg"))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, validatePIN("1234", "1234"))
	assert.Error(t, validatePIN("12", "1234"))
	assert.Error(t, validatePIN("1234", "4321"))
	assert.Error(t, validatePIN("12a4", "12a4"))
	assert.Error(t, validatePIN("12345", "12345"))
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, validateOTP("1234"))
	assert.Error(t, validateOTP("123"))
	assert.Error(t, validateOTP("12345"))
	assert.Error(t, validateOTP("12a4"))
}
