package book_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
)

func newContact(t *testing.T, name string, phones ...string) *book.Contact {
	t.Helper()
	c, err := book.NewContact(name)
	require.NoError(t, err)
	for _, p := range phones {
		_, err := c.AddPhone(p)
		require.NoError(t, err)
	}
	return c
}

func phoneValues(c *book.Contact) []string {
	var out []string
	for _, p := range c.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewContact(t *testing.T) {
	c, err := book.NewContact("John")
	require.NoError(t, err)
	assert.Equal(t, "John", c.Name())
	assert.Empty(t, c.Phones())
	_, ok := c.Birthday()
	assert.False(t, ok)

	_, err = book.NewContact("")
	assert.ErrorIs(t, err, book.ErrValidation)
}

func TestAddPhone(t *testing.T) {
	c := newContact(t, "John")

	added, err := c.AddPhone("0501234567")
	require.NoError(t, err)
	assert.True(t, added)

	// Duplicate is a no-op, not an error.
	added, err = c.AddPhone("0501234567")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = c.AddPhone("0670000000")
	require.NoError(t, err)
	assert.True(t, added)

	_, err = c.AddPhone("123")
	assert.ErrorIs(t, err, book.ErrValidation)

	assert.Equal(t, []string{"0501234567", "0670000000"}, phoneValues(c))
}

func TestPhones_ReturnsCopy(t *testing.T) {
	c := newContact(t, "John", "0501234567")
	phones := c.Phones()
	phones[0] = book.Phone{}

	assert.Equal(t, []string{"0501234567"}, phoneValues(c))
}

func TestFindPhone(t *testing.T) {
	c := newContact(t, "John", "0501234567")

	p, ok := c.FindPhone("0501234567")
	assert.True(t, ok)
	assert.Equal(t, "0501234567", p.String())

	_, ok = c.FindPhone("0000000000")
	assert.False(t, ok)
}

func TestRemovePhone(t *testing.T) {
	c := newContact(t, "John", "1111111111", "2222222222", "3333333333")

	require.NoError(t, c.RemovePhone("2222222222"))
	assert.Equal(t, []string{"1111111111", "3333333333"}, phoneValues(c))

	err := c.RemovePhone("2222222222")
	assert.ErrorIs(t, err, book.ErrNotFound)

	var nf *book.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, book.KindPhone, nf.Kind)
	assert.Equal(t, "2222222222", nf.Key)
}

func TestEditPhone(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr error
		want    []string
	}{
		{
			name: "Replaces in place",
			old:  "2222222222", new: "9999999999",
			want: []string{"1111111111", "9999999999", "3333333333"},
		},
		{
			name: "Same value is accepted",
			old:  "2222222222", new: "2222222222",
			want: []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name: "Missing old phone",
			old:  "0000000000", new: "9999999999",
			wantErr: book.ErrNotFound,
			want:    []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name: "Invalid new phone",
			old:  "2222222222", new: "12",
			wantErr: book.ErrValidation,
			want:    []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name: "New phone already listed",
			old:  "2222222222", new: "3333333333",
			wantErr: book.ErrDuplicate,
			want:    []string{"1111111111", "2222222222", "3333333333"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContact(t, "John", "1111111111", "2222222222", "3333333333")
			err := c.EditPhone(tt.old, tt.new)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, phoneValues(c), "Phone list must only change on success")
		})
	}
}

func TestSetBirthday(t *testing.T) {
	c := newContact(t, "John")

	require.NoError(t, c.SetBirthday("15.03.1990"))
	b, ok := c.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.03.1990", b.String())

	// Overwrite.
	require.NoError(t, c.SetBirthday("01.01.2000"))
	b, _ = c.Birthday()
	assert.Equal(t, "01.01.2000", b.String())

	// A failed update keeps the previous value.
	assert.ErrorIs(t, c.SetBirthday("31.02.2000"), book.ErrValidation)
	b, _ = c.Birthday()
	assert.Equal(t, "01.01.2000", b.String())

	// Setting a zero Birthday clears it.
	c.SetBirthdayDate(book.Birthday{})
	_, ok = c.Birthday()
	assert.False(t, ok)
}

func TestContactString(t *testing.T) {
	c := newContact(t, "John")
	assert.Equal(t, "Contact name: John, phones: no phones", c.String())

	_, _ = c.AddPhone("1111111111")
	_, _ = c.AddPhone("2222222222")
	assert.Equal(t, "Contact name: John, phones: 1111111111; 2222222222", c.String())

	require.NoError(t, c.SetBirthday("15.03.1990"))
	assert.Equal(t, "Contact name: John, phones: 1111111111; 2222222222, birthday: 15.03.1990", c.String())
}
