package shell

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ArgumentError reports a command line whose arguments do not match the
// command's arity. Usage shows the expected form.
type ArgumentError struct {
	Command string
	Usage   string
	Err     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: wrong arguments (usage: %s): %v", e.Command, e.Usage, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FileError reports an import file that could not be opened or decoded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", config.ErrImportOpen, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// validationMessages maps a rejected field to its message ID.
var validationMessages = map[string]string{
	book.FieldName:     config.TKeyErrInvalidName,
	book.FieldPhone:    config.TKeyErrInvalidPhone,
	book.FieldBirthday: config.TKeyErrInvalidBday,
}

// notFoundMessages maps the kind of a failed lookup to its message ID.
var notFoundMessages = map[string]string{
	book.KindContact: config.TKeyErrContactAbsent,
	book.KindPhone:   config.TKeyErrPhoneAbsent,
}

// describeError translates an error into user-facing text. Every failure is
// logged; none is discarded.
func (s *Shell) describeError(err error) string {
	s.log.Info(config.MsgCmdFailed, config.LogKeyError, err.Error())

	key, data := s.errorMessage(err)
	return s.styles.err.Render(s.msg(config.TKeyErrPrefix, nil)) + " " + s.msg(key, data)
}

// errorMessage picks the message ID and template data for err.
func (s *Shell) errorMessage(err error) (string, map[string]any) {
	var (
		argErr   *ArgumentError
		fileErr  *FileError
		validErr *book.ValidationError
		notFound *book.NotFoundError
		dupErr   *book.DuplicateError
	)

	switch {
	case errors.As(err, &argErr):
		return config.TKeyErrArguments, map[string]any{"Usage": argErr.Usage}
	case errors.As(err, &fileErr):
		return config.TKeyErrFile, map[string]any{"Error": fileErr.Err.Error()}
	case errors.As(err, &validErr):
		if key, ok := validationMessages[validErr.Field]; ok {
			return key, map[string]any{"Value": validErr.Value}
		}
	case errors.As(err, &notFound):
		if key, ok := notFoundMessages[notFound.Kind]; ok {
			return key, map[string]any{"Key": notFound.Key}
		}
	case errors.As(err, &dupErr):
		return config.TKeyErrPhoneDup, map[string]any{"Key": dupErr.Key}
	}
	return config.TKeyErrUnexpected, map[string]any{"Error": err.Error()}
}
