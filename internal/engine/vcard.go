package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ImportResult summarises a vCard import.
type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

// ExportVCard writes every contact as a vCard 4.0 card, in directory order.
func ExportVCard(w io.Writer, contacts []*book.Contact) error {
	enc := vcard.NewEncoder(w)
	for _, c := range contacts {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, c.Name())
		for _, p := range c.Phones() {
			card.AddValue(vcard.FieldTelephone, p.String())
		}
		if b, ok := c.Birthday(); ok {
			dob, _ := b.Date()
			card.SetValue(vcard.FieldBirthday, dob.Format(config.DateFormatFullDash))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	slog.Debug(config.MsgVCardExported,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(contacts))
	return nil
}

// ImportVCard decodes cards from r and merges them into dir. A card whose
// name matches an existing contact adds its phones to that contact and
// replaces its birthday when the card has one. Cards without a name or whose
// name contains whitespace, invalid phones and unparseable dates are skipped
// with a warning.
func ImportVCard(ctx context.Context, r io.Reader, dir *book.Directory) (ImportResult, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	decoder := vcard.NewDecoder(r)
	var res ImportResult

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken stream cannot be resynchronised; stop here.
			return res, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		name := cardName(card)
		if name == "" {
			log.Warn(config.MsgSkippedCard, config.LogKeyReason, config.ReasonNameEmpty)
			res.Skipped++
			continue
		}

		// Shell commands take a name as one token; such a contact would be unreachable.
		if strings.ContainsFunc(name, unicode.IsSpace) {
			log.Warn(config.MsgSkippedCard,
				config.LogKeyName, name,
				config.LogKeyReason, config.ReasonNameSpaces)
			res.Skipped++
			continue
		}

		contact, err := dir.Find(name)
		if err != nil {
			contact, err = book.NewContact(name)
			if err != nil {
				res.Skipped++
				continue
			}
			dir.Add(contact)
			res.Created++
		} else {
			res.Updated++
		}

		for _, raw := range card.Values(vcard.FieldTelephone) {
			if _, err := contact.AddPhone(digitsOnly(raw)); err != nil {
				log.Warn(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyPhone, raw,
					config.LogKeyError, err)
			}
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			dob, err := parseDate(bday)
			if err != nil {
				log.Warn(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyBirthday, bday)
				continue
			}
			contact.SetBirthdayDate(book.NewBirthdayFromDate(dob))
		}
	}

	log.Info(config.MsgVCardImported,
		config.LogKeyCreated, res.Created,
		config.LogKeyUpdated, res.Updated,
		config.LogKeySkipped, res.Skipped)
	return res, nil
}

// cardName applies the name strategy FN (Formatted) > N (Structured).
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.Value(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	return strings.TrimSpace(card.Value(vcard.FieldName))
}

// digitsOnly drops everything but decimal digits, so "(050) 123-45-67"
// becomes "0501234567". Validation still decides whether the result is a phone.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}

// parseDate handles the vCard date forms that carry a year.
// Year-less dates (--MM-DD) are rejected: a Birthday is always a full date.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
