package book

import (
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Directory is the in-memory collection of contacts keyed by exact name.
// Iteration follows first-insertion order. It is not safe for concurrent use.
type Directory struct {
	order    []string
	contacts map[string]*Contact
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{contacts: make(map[string]*Contact)}
}

// Add stores c under its name. When the name is already present the stored
// contact is replaced, its position is kept, and replaced is true.
// c must not be nil.
func (d *Directory) Add(c *Contact) (replaced bool) {
	name := c.Name()
	if _, ok := d.contacts[name]; ok {
		replaced = true
	} else {
		d.order = append(d.order, name)
	}
	d.contacts[name] = c
	return replaced
}

// Find returns the contact stored under name or a *NotFoundError.
func (d *Directory) Find(name string) (*Contact, error) {
	c, ok := d.contacts[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindContact, Key: name}
	}
	return c, nil
}

// Delete removes the contact stored under name.
func (d *Directory) Delete(name string) error {
	if _, ok := d.contacts[name]; !ok {
		return &NotFoundError{Kind: KindContact, Key: name}
	}
	delete(d.contacts, name)
	d.order = slices.DeleteFunc(d.order, func(n string) bool { return n == name })
	return nil
}

// Len returns the number of contacts.
func (d *Directory) Len() int {
	return len(d.order)
}

// Contacts returns the contacts in iteration order.
func (d *Directory) Contacts() []*Contact {
	out := make([]*Contact, len(d.order))
	for i, name := range d.order {
		out[i] = d.contacts[name]
	}
	return out
}

// UpcomingBirthdays renders the weekday groups of UpcomingBirthdays
// for the directory's current contacts.
func (d *Directory) UpcomingBirthdays(today time.Time, horizonDays int) []string {
	groups := GroupByWeekday(UpcomingBirthdays(d.Contacts(), today, horizonDays))
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out
}

func (d *Directory) String() string {
	if len(d.order) == 0 {
		return config.DirectoryEmpty
	}
	lines := make([]string, len(d.order))
	for i, c := range d.Contacts() {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
