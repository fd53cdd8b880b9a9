package book

import (
	"regexp"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
)

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// Name identifies a contact. Always valid in memory; use NewName to construct.
type Name struct {
	value string
}

// NewName validates raw and returns a Name.
// Trimming is left to the caller; only emptiness is rejected here.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, &ValidationError{Field: FieldName, Value: raw, Reason: config.ReasonNameEmpty}
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether raw can become a Name.
func IsValidName(raw string) bool {
	return raw != ""
}

// Set replaces the value if raw is valid. The old value is kept on failure.
func (n *Name) Set(raw string) error {
	next, err := NewName(raw)
	if err != nil {
		return err
	}
	*n = next
	return nil
}

func (n Name) String() string { return n.value }

// Phone is a 10-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates raw and returns a Phone. No normalisation is applied:
// country codes, spaces and punctuation are rejected.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, &ValidationError{Field: FieldPhone, Value: raw, Reason: config.ReasonPhoneDigits}
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether raw is exactly 10 ASCII decimal digits.
func IsValidPhone(raw string) bool {
	return phonePattern.MatchString(raw)
}

// Set replaces the value if raw is valid. The old value is kept on failure.
func (p *Phone) Set(raw string) error {
	next, err := NewPhone(raw)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date rendered as DD.MM.YYYY.
// The zero value holds no date and renders as config.BirthdayNotSet.
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses raw under the exact DD.MM.YYYY layout.
// Impossible dates such as 31.02.2024 are rejected.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, &ValidationError{Field: FieldBirthday, Value: raw, Reason: config.ReasonBirthdayFormat}
	}
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: FieldBirthday, Value: raw, Reason: config.ReasonBirthdayDate}
	}
	return Birthday{date: t, set: true}, nil
}

// NewBirthdayFromDate builds a Birthday from an already parsed date.
// Only the calendar date in t's location is kept.
func NewBirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: dateOf(t), set: true}
}

// IsValidBirthday reports whether raw parses as a DD.MM.YYYY calendar date.
func IsValidBirthday(raw string) bool {
	_, err := NewBirthday(raw)
	return err == nil
}

// Set replaces the value if raw is valid. The old value is kept on failure.
func (b *Birthday) Set(raw string) error {
	next, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	*b = next
	return nil
}

// Date returns the stored date at midnight UTC and whether one is set.
func (b Birthday) Date() (time.Time, bool) {
	return b.date, b.set
}

func (b Birthday) String() string {
	if !b.set {
		return config.BirthdayNotSet
	}
	return b.date.Format(config.DateFormatBirthday)
}

// dateOf strips the clock and location from t, keeping its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
