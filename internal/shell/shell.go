// Package shell is the interactive front end of the address book: it reads
// command lines, dispatches them to the directory and prints localized replies.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// Shell drives the directory from a line-oriented command stream.
// One Shell is one logical actor; it is not safe for concurrent use.
type Shell struct {
	Book     *book.Directory
	Settings config.Settings
	Clock    book.Clock // Injected clock for testability.

	out       io.Writer
	localizer *i18n.Localizer
	styles    styles
	generator *engine.Generator
	log       *slog.Logger
	languages []string
}

// Option configures a Shell.
type Option func(*Shell)

// WithClock replaces the real clock, typically with a fixed "today" in tests.
func WithClock(c book.Clock) Option {
	return func(s *Shell) { s.Clock = c }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// New builds a Shell writing to out. Colour follows settings.Color; in
// "auto" mode it is enabled only when out is a terminal.
func New(dir *book.Directory, settings config.Settings, out io.Writer, opts ...Option) (*Shell, error) {
	s := &Shell{
		Book:     dir,
		Settings: settings,
		Clock:    book.RealClock{},
		out:      out,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(config.LogKeyComponent, config.CompShell)

	bundle, langs, err := newBundle()
	if err != nil {
		return nil, err
	}
	s.languages = langs
	s.localizer = i18n.NewLocalizer(bundle, settings.Language)
	s.styles = newStyles(colorEnabled(settings.Color, out))

	s.generator = &engine.Generator{
		Clock:         s.Clock,
		FormatSummary: s.eventSummary,
	}
	return s, nil
}

// Run prints the welcome line and serves commands from in until an exit
// command, end of input or cancellation of ctx.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.println(s.msg(config.TKeyWelcome, nil))

	// The reader sends exactly one value on readErr before closing lines.
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				readErr <- nil
				return
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		s.print(s.styles.prompt.Render(s.msg(config.TKeyPrompt, nil)))

		select {
		case <-ctx.Done():
			s.log.Info(config.MsgCtxCancel)
			s.println("")
			return nil
		case line, ok := <-lines:
			if !ok {
				s.println("")
				if ctx.Err() != nil {
					s.log.Info(config.MsgCtxCancel)
					return nil
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				}
				return nil
			}

			reply, quit := s.Execute(ctx, line)
			if reply != "" {
				s.println(reply)
			}
			if quit {
				return nil
			}
		}
	}
}

// Execute runs a single command line and returns the text to show.
// quit reports whether the line asked the shell to stop.
// Blank lines produce no reply.
func (s *Shell) Execute(ctx context.Context, line string) (reply string, quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", false
	}
	tokens[0] = strings.ToLower(tokens[0])

	sess := &session{shell: s, ctx: ctx}
	if err := s.dispatch(sess, tokens); err != nil {
		return s.describeError(err), false
	}
	return sess.reply(), sess.quit
}

func (s *Shell) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

// eventSummary localizes the SUMMARY of exported calendar events.
func (s *Shell) eventSummary(name string, age int) string {
	if age == 0 {
		return s.msg(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	}
	return s.msg(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}

// colorEnabled resolves the colour setting against the output stream.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
