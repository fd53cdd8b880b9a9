package book_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"0501234567", true},
		{"1234567890", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345abcde", false},
		{"+380501234567", false},
		{"050 123 4567", false},
		{"", false},
		{"٠١٢٣٤٥٦٧٨٩", false}, // Arabic-Indic digits are not ASCII
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := book.NewPhone(tt.raw)
			assert.Equal(t, tt.valid, book.IsValidPhone(tt.raw))
			if !tt.valid {
				require.Error(t, err)
				assert.ErrorIs(t, err, book.ErrValidation)

				var vErr *book.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, book.FieldPhone, vErr.Field)
				assert.Equal(t, tt.raw, vErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestPhoneSet_KeepsOldValueOnFailure(t *testing.T) {
	p, err := book.NewPhone("0501234567")
	require.NoError(t, err)

	err = p.Set("bad")
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.Equal(t, "0501234567", p.String())

	require.NoError(t, p.Set("0670000000"))
	assert.Equal(t, "0670000000", p.String())
}

func TestNewName(t *testing.T) {
	n, err := book.NewName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())

	// Only emptiness is rejected; case and spacing are preserved.
	n, err = book.NewName(" john ")
	require.NoError(t, err)
	assert.Equal(t, " john ", n.String())

	_, err = book.NewName("")
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.False(t, book.IsValidName(""))

	err = n.Set("")
	assert.Error(t, err)
	assert.Equal(t, " john ", n.String())
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		date  time.Time
	}{
		{"15.03.1990", true, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"29.02.2024", true, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"01.01.0001", true, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"29.02.2023", false, time.Time{}}, // Not a leap year
		{"31.02.2024", false, time.Time{}},
		{"32.01.2024", false, time.Time{}},
		{"15.13.1990", false, time.Time{}},
		{"1990-03-15", false, time.Time{}},
		{"5.3.1990", false, time.Time{}},
		{"15.03.90", false, time.Time{}},
		{"", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			b, err := book.NewBirthday(tt.raw)
			assert.Equal(t, tt.valid, book.IsValidBirthday(tt.raw))
			if !tt.valid {
				assert.ErrorIs(t, err, book.ErrValidation)
				return
			}
			require.NoError(t, err)
			got, ok := b.Date()
			assert.True(t, ok)
			assert.Equal(t, tt.date, got)
			assert.Equal(t, tt.raw, b.String(), "String must round-trip the input")
		})
	}
}

func TestBirthday_ZeroValue(t *testing.T) {
	var b book.Birthday
	_, ok := b.Date()
	assert.False(t, ok)
	assert.Equal(t, config.BirthdayNotSet, b.String())
}

func TestNewBirthdayFromDate_DropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	b := book.NewBirthdayFromDate(time.Date(1990, 3, 15, 23, 30, 0, 0, loc))

	got, ok := b.Date()
	assert.True(t, ok)
	assert.Equal(t, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "15.03.1990", b.String())
}
