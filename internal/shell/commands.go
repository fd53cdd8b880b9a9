package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// grammar is the per-line command language. Positional `arg` tags define the
// arity of every command; usage strings are derived from them.
type grammar struct {
	Hello        helloCmd        `cmd:"" name:"hello" help:"Greet the assistant."`
	Add          addCmd          `cmd:"" name:"add" help:"Add a contact or attach a phone to it."`
	Change       changeCmd       `cmd:"" name:"change" help:"Replace one of a contact's phones."`
	Phone        phoneCmd        `cmd:"" name:"phone" help:"Show a contact's phones."`
	RemovePhone  removePhoneCmd  `cmd:"" name:"remove-phone" help:"Remove one of a contact's phones."`
	All          allCmd          `cmd:"" name:"all" help:"Show every contact."`
	Delete       deleteCmd       `cmd:"" name:"delete" help:"Delete a contact."`
	AddBirthday  addBirthdayCmd  `cmd:"" name:"add-birthday" help:"Set a contact's birthday (DD.MM.YYYY)."`
	ShowBirthday showBirthdayCmd `cmd:"" name:"show-birthday" help:"Show a contact's birthday."`
	Birthdays    birthdaysCmd    `cmd:"" name:"birthdays" help:"List whom to congratulate in the coming days."`
	Agenda       agendaCmd       `cmd:"" name:"agenda" help:"List every birthday by next occurrence."`
	ExportVCard  exportVCardCmd  `cmd:"" name:"export-vcard" help:"Print the address book as vCards."`
	ExportICal   exportICalCmd   `cmd:"" name:"export-ical" help:"Print a birthday calendar (iCalendar)."`
	Import       importCmd       `cmd:"" name:"import" help:"Merge contacts from a vCard file."`
	Help         helpCmd         `cmd:"" name:"help" help:"List the commands."`
	Exit         exitCmd         `cmd:"" name:"exit" aliases:"close,quit" help:"Leave the assistant."`
}

// session carries the state of one dispatched line into the command handlers.
type session struct {
	shell *Shell
	ctx   context.Context
	out   strings.Builder
	quit  bool
}

func (s *session) say(text string) {
	if s.out.Len() > 0 {
		s.out.WriteByte('\n')
	}
	s.out.WriteString(text)
}

func (s *session) reply() string {
	return s.out.String()
}

// newParser builds a fresh parser, so no value from a previous line survives.
func newParser() (*kong.Kong, *grammar, error) {
	var g grammar
	parser, err := kong.New(&g,
		kong.Name(config.BinaryName),
		kong.NoDefaultHelp(),
		kong.Exit(func(int) {}),
		kong.Writers(io.Discard, io.Discard),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.ErrGrammar, err)
	}
	return parser, &g, nil
}

// dispatch parses tokens against the grammar and runs the selected command.
func (s *Shell) dispatch(sess *session, tokens []string) error {
	parser, _, err := newParser()
	if err != nil {
		return err
	}

	node := findCommand(parser.Model.Node, tokens[0])
	if node == nil {
		sess.say(s.msg(config.TKeyUnknownCmd, nil))
		return nil
	}

	s.log.Debug(config.MsgCmdDispatch,
		config.LogKeyCommand, node.Name,
		config.LogKeyArgs, strings.Join(tokens[1:], " "),
	)

	// "--" ends flag parsing, so names such as "-Bob" stay positional.
	args := append([]string{tokens[0], "--"}, tokens[1:]...)
	kctx, err := parser.Parse(args)
	if err != nil {
		return &ArgumentError{Command: node.Name, Usage: usage(node), Err: err}
	}
	return kctx.Run(sess)
}

// findCommand resolves a command token, aliases included.
func findCommand(root *kong.Node, name string) *kong.Node {
	for _, child := range root.Children {
		if child.Name == name {
			return child
		}
		for _, alias := range child.Aliases {
			if alias == name {
				return child
			}
		}
	}
	return nil
}

// usage renders "name <arg> <arg>" from the command's positional arguments.
func usage(node *kong.Node) string {
	parts := []string{node.Name}
	for _, p := range node.Positional {
		parts = append(parts, "<"+p.Name+">")
	}
	return strings.Join(parts, " ")
}

// Usage returns the usage line of every command, in grammar order.
func Usage() []string {
	parser, _, err := newParser()
	if err != nil {
		return nil
	}
	var lines []string
	for _, child := range parser.Model.Children {
		lines = append(lines, fmt.Sprintf("  %-34s %s", usage(child), child.Help))
	}
	return lines
}

type helloCmd struct{}

func (c *helloCmd) Run(sess *session) error {
	sess.say(sess.shell.msg(config.TKeyHello, nil))
	return nil
}

type addCmd struct {
	Name  string `arg:"" name:"name" help:"Contact name."`
	Phone string `arg:"" name:"phone" help:"10-digit phone number."`
}

// Run validates the phone before touching the directory, so an invalid number
// never leaves a phoneless contact behind.
func (c *addCmd) Run(sess *session) error {
	sh := sess.shell
	if _, err := book.NewPhone(c.Phone); err != nil {
		return err
	}
	data := map[string]any{"Name": c.Name, "Phone": c.Phone}

	contact, err := sh.Book.Find(c.Name)
	if errors.Is(err, book.ErrNotFound) {
		contact, err = book.NewContact(c.Name)
		if err != nil {
			return err
		}
		if _, err := contact.AddPhone(c.Phone); err != nil {
			return err
		}
		sh.Book.Add(contact)
		sess.say(sh.msg(config.TKeyContactAdded, data))
		return nil
	}

	added, err := contact.AddPhone(c.Phone)
	if err != nil {
		return err
	}
	if added {
		sess.say(sh.msg(config.TKeyPhoneAdded, data))
	} else {
		sess.say(sh.msg(config.TKeyPhoneExists, data))
	}
	return nil
}

type changeCmd struct {
	Name     string `arg:"" name:"name" help:"Contact name."`
	OldPhone string `arg:"" name:"old-phone" help:"Phone to replace."`
	NewPhone string `arg:"" name:"new-phone" help:"Replacement phone."`
}

func (c *changeCmd) Run(sess *session) error {
	sh := sess.shell
	contact, err := sh.Book.Find(c.Name)
	if err != nil {
		return err
	}
	if err := contact.EditPhone(c.OldPhone, c.NewPhone); err != nil {
		return err
	}
	sess.say(sh.msg(config.TKeyPhoneChanged, map[string]any{"Name": c.Name, "Old": c.OldPhone, "New": c.NewPhone}))
	return nil
}

type phoneCmd struct {
	Name string `arg:"" name:"name" help:"Contact name."`
}

func (c *phoneCmd) Run(sess *session) error {
	sh := sess.shell
	contact, err := sh.Book.Find(c.Name)
	if err != nil {
		return err
	}
	phones := contact.Phones()
	if len(phones) == 0 {
		sess.say(sh.msg(config.TKeyPhoneListEmpty, map[string]any{"Name": c.Name}))
		return nil
	}
	sess.say(sh.msg(config.TKeyPhoneList, map[string]any{"Name": c.Name, "Phones": joinPhones(phones, ", ")}))
	return nil
}

type removePhoneCmd struct {
	Name  string `arg:"" name:"name" help:"Contact name."`
	Phone string `arg:"" name:"phone" help:"Phone to remove."`
}

func (c *removePhoneCmd) Run(sess *session) error {
	sh := sess.shell
	contact, err := sh.Book.Find(c.Name)
	if err != nil {
		return err
	}
	if err := contact.RemovePhone(c.Phone); err != nil {
		return err
	}
	sess.say(sh.msg(config.TKeyPhoneRemoved, map[string]any{"Name": c.Name, "Phone": c.Phone}))
	return nil
}

type allCmd struct{}

func (c *allCmd) Run(sess *session) error {
	sh := sess.shell
	contacts := sh.Book.Contacts()
	if len(contacts) == 0 {
		sess.say(sh.msg(config.TKeyDirectoryEmpty, nil))
		return nil
	}
	for _, contact := range contacts {
		sess.say(sh.contactLine(contact))
	}
	return nil
}

type deleteCmd struct {
	Name string `arg:"" name:"name" help:"Contact name."`
}

func (c *deleteCmd) Run(sess *session) error {
	if err := sess.shell.Book.Delete(c.Name); err != nil {
		return err
	}
	sess.say(sess.shell.msg(config.TKeyContactDeleted, map[string]any{"Name": c.Name}))
	return nil
}

type addBirthdayCmd struct {
	Name     string `arg:"" name:"name" help:"Contact name."`
	Birthday string `arg:"" name:"date" help:"Birthday as DD.MM.YYYY."`
}

func (c *addBirthdayCmd) Run(sess *session) error {
	sh := sess.shell
	contact, err := sh.Book.Find(c.Name)
	if err != nil {
		return err
	}
	if err := contact.SetBirthday(c.Birthday); err != nil {
		return err
	}
	sess.say(sh.msg(config.TKeyBirthdayAdded, map[string]any{"Name": c.Name, "Birthday": c.Birthday}))
	return nil
}

type showBirthdayCmd struct {
	Name string `arg:"" name:"name" help:"Contact name."`
}

func (c *showBirthdayCmd) Run(sess *session) error {
	sh := sess.shell
	contact, err := sh.Book.Find(c.Name)
	if err != nil {
		return err
	}
	b, ok := contact.Birthday()
	if !ok {
		sess.say(sh.msg(config.TKeyBirthdayNotSet, map[string]any{"Name": c.Name}))
		return nil
	}
	sess.say(sh.msg(config.TKeyBirthdayShow, map[string]any{"Name": c.Name, "Birthday": b.String()}))
	return nil
}

type birthdaysCmd struct{}

func (c *birthdaysCmd) Run(sess *session) error {
	sh := sess.shell
	today := book.Today(sh.Clock)

	groups := sh.Book.UpcomingBirthdays(today, sh.Settings.HorizonDays)
	if len(groups) == 0 {
		sess.say(sh.noBirthdaysMessage(today))
		return nil
	}

	sess.say(sh.styles.header.Render(sh.msg(config.TKeyUpcomingHeader, nil)))
	for _, g := range groups {
		sess.say(g)
	}
	return nil
}

// noBirthdaysMessage names the period that was found empty: the rest of this
// week when today is Monday, otherwise the week starting next Monday.
func (s *Shell) noBirthdaysMessage(today time.Time) string {
	if today.Weekday() == time.Monday {
		return s.msg(config.TKeyNoneThisWeek, nil)
	}
	daysUntilMonday := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	nextMonday := today.AddDate(0, 0, daysUntilMonday)
	return s.msg(config.TKeyNoneNextWeek, map[string]any{"Date": nextMonday.Format(config.DateFormatBirthday)})
}

type agendaCmd struct{}

func (c *agendaCmd) Run(sess *session) error {
	sh := sess.shell
	entries := engine.Entries(sh.Book.Contacts(), sh.Clock.Now())
	if len(entries) == 0 {
		sess.say(sh.msg(config.TKeyAgendaEmpty, nil))
		return nil
	}
	for _, e := range entries {
		sess.say(sh.msg(config.TKeyAgendaLine, map[string]any{
			"Date": e.NextOccurrence.Format(config.DateFormatBirthday),
			"Name": e.Name,
			"Age":  e.AgeNext,
		}))
	}
	return nil
}

type exportVCardCmd struct{}

func (c *exportVCardCmd) Run(sess *session) error {
	var buf strings.Builder
	if err := engine.ExportVCard(&buf, sess.shell.Book.Contacts()); err != nil {
		return err
	}
	sess.say(strings.TrimRight(buf.String(), "\r\n"))
	return nil
}

type exportICalCmd struct{}

func (c *exportICalCmd) Run(sess *session) error {
	sh := sess.shell
	data, _, err := sh.generator.Calendar(sess.ctx, sh.Book.Contacts(), sh.Settings.Calendar.Reminder)
	if err != nil {
		return err
	}
	sess.say(strings.TrimRight(string(data), "\r\n"))
	return nil
}

type importCmd struct {
	Path string `arg:"" name:"file" help:"Path to a .vcf file."`
}

func (c *importCmd) Run(sess *session) error {
	sh := sess.shell
	f, err := os.Open(c.Path)
	if err != nil {
		return &FileError{Path: c.Path, Err: err}
	}
	defer func() { _ = f.Close() }()

	res, err := engine.ImportVCard(sess.ctx, f, sh.Book)
	if err != nil {
		return &FileError{Path: c.Path, Err: err}
	}
	sess.say(sh.msg(config.TKeyImportDone, map[string]any{
		"Path":    c.Path,
		"Created": res.Created,
		"Updated": res.Updated,
		"Skipped": res.Skipped,
	}))
	return nil
}

type helpCmd struct{}

func (c *helpCmd) Run(sess *session) error {
	sess.say(sess.shell.styles.header.Render(sess.shell.msg(config.TKeyHelpHeader, nil)))
	for _, line := range Usage() {
		sess.say(line)
	}
	return nil
}

type exitCmd struct{}

func (c *exitCmd) Run(sess *session) error {
	sess.say(sess.shell.msg(config.TKeyGoodbye, nil))
	sess.quit = true
	return nil
}

// contactLine renders one contact for the "all" listing.
func (s *Shell) contactLine(c *book.Contact) string {
	phones := s.msg(config.TKeyNoPhones, nil)
	if list := c.Phones(); len(list) > 0 {
		phones = joinPhones(list, config.PhoneSeparator)
	}
	data := map[string]any{"Name": c.Name(), "Phones": phones}
	if b, ok := c.Birthday(); ok {
		data["Birthday"] = b.String()
		return s.msg(config.TKeyContactLineBday, data)
	}
	return s.msg(config.TKeyContactLine, data)
}

func joinPhones(phones []book.Phone, sep string) string {
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, sep)
}
