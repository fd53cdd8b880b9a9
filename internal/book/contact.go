package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Contact is a directory entry: a name, an ordered set of unique phones and
// an optional birthday.
type Contact struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewContact creates a contact with no phones and no birthday.
func NewContact(name string) (*Contact, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Contact{name: n}, nil
}

// Name returns the contact's name.
func (c *Contact) Name() string {
	return c.name.String()
}

// Phones returns a copy of the phone list in insertion order.
func (c *Contact) Phones() []Phone {
	return slices.Clone(c.phones)
}

// Birthday returns the birthday and whether one is set.
func (c *Contact) Birthday() (Birthday, bool) {
	if c.birthday == nil {
		return Birthday{}, false
	}
	return *c.birthday, true
}

// AddPhone appends a phone. It returns false without error when the number is
// already present, and a *ValidationError when raw is not a valid phone.
func (c *Contact) AddPhone(raw string) (bool, error) {
	p, err := NewPhone(raw)
	if err != nil {
		return false, err
	}
	if c.indexOf(p.value) >= 0 {
		return false, nil
	}
	c.phones = append(c.phones, p)
	return true, nil
}

// FindPhone looks up a phone by exact value.
func (c *Contact) FindPhone(raw string) (Phone, bool) {
	i := c.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return c.phones[i], true
}

// RemovePhone deletes a phone, keeping the order of the remaining ones.
func (c *Contact) RemovePhone(raw string) error {
	i := c.indexOf(raw)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: raw}
	}
	c.phones = slices.Delete(c.phones, i, i+1)
	return nil
}

// EditPhone replaces oldRaw with newRaw in place. The phone list is untouched
// unless the whole edit succeeds.
func (c *Contact) EditPhone(oldRaw, newRaw string) error {
	i := c.indexOf(oldRaw)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: oldRaw}
	}
	next, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	if next.value != c.phones[i].value && c.indexOf(next.value) >= 0 {
		return &DuplicateError{Kind: KindPhone, Key: next.value}
	}
	c.phones[i] = next
	return nil
}

// SetBirthday validates raw and overwrites any previous birthday.
func (c *Contact) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	c.birthday = &b
	return nil
}

// SetBirthdayDate stores an already parsed birthday.
func (c *Contact) SetBirthdayDate(b Birthday) {
	if _, ok := b.Date(); !ok {
		c.birthday = nil
		return
	}
	c.birthday = &b
}

func (c *Contact) String() string {
	phones := config.NoPhones
	if len(c.phones) > 0 {
		values := make([]string, len(c.phones))
		for i, p := range c.phones {
			values[i] = p.value
		}
		phones = strings.Join(values, config.PhoneSeparator)
	}

	s := fmt.Sprintf(config.FormatContact, c.name, phones)
	if c.birthday != nil {
		s += fmt.Sprintf(config.FormatContactBirthday, c.birthday)
	}
	return s
}

func (c *Contact) indexOf(value string) int {
	return slices.IndexFunc(c.phones, func(p Phone) bool { return p.value == value })
}
