package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Address Book"
	AppID       = "com.github.tartampluch.go-addressbook"
	BinaryName  = "addressbook"
	LogFileName = "app.log"
	EnvPrefix   = "ADDRESSBOOK_"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// The log may contain contact names.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	AppDescription   = "Interactive contact manager with birthday reminders."
	MsgVersionOutput = "%s version %s (%s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Core Rendering
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only accepted input layout for birthdays (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	BirthdayNotSet        = "not set"
	NoPhones              = "no phones"
	PhoneSeparator        = "; "
	DirectoryEmpty        = "The address book is empty."
	FormatContact         = "Contact name: %s, phones: %s"
	FormatContactBirthday = ", birthday: %s"

	ReasonNameEmpty      = "name cannot be empty"
	ReasonNameSpaces     = "name contains whitespace"
	ReasonPhoneDigits    = "phone must contain exactly 10 digits"
	ReasonBirthdayFormat = "use the DD.MM.YYYY format"
	ReasonBirthdayDate   = "not a valid calendar date"
)

// -----------------------------------------------------------------------------
// Settings Defaults & Allowed Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage    = "en"
	DefaultHorizonDays = 7
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultColor       = ColorAuto

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

// SupportedLanguages defines the list of available shell languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome    = "welcome"
	TKeyPrompt     = "prompt"
	TKeyHello      = "hello"
	TKeyGoodbye    = "goodbye"
	TKeyUnknownCmd = "unknown_command"
	TKeyHelpHeader = "help_header"

	TKeyContactAdded     = "contact_added"       // Requires Name, Phone
	TKeyPhoneAdded       = "phone_added"         // Requires Name, Phone
	TKeyPhoneExists      = "phone_exists"        // Requires Name, Phone
	TKeyPhoneChanged     = "phone_changed"       // Requires Name, Old, New
	TKeyPhoneRemoved     = "phone_removed"       // Requires Name, Phone
	TKeyPhoneList        = "phone_list"          // Requires Name, Phones
	TKeyPhoneListEmpty   = "phone_list_empty"    // Requires Name
	TKeyContactDeleted   = "contact_deleted"     // Requires Name
	TKeyDirectoryEmpty   = "directory_empty"
	TKeyContactLine      = "contact_line"        // Requires Name, Phones
	TKeyContactLineBday  = "contact_line_bday"   // Requires Name, Phones, Birthday
	TKeyNoPhones         = "no_phones"
	TKeyBirthdayAdded    = "birthday_added"      // Requires Name, Birthday
	TKeyBirthdayShow     = "birthday_show"       // Requires Name, Birthday
	TKeyBirthdayNotSet   = "birthday_not_set"    // Requires Name
	TKeyUpcomingHeader   = "upcoming_header"
	TKeyNoneThisWeek     = "upcoming_none_week"
	TKeyNoneNextWeek     = "upcoming_none_next"  // Requires Date
	TKeyAgendaLine       = "agenda_line"         // Requires Date, Name, Age
	TKeyAgendaEmpty      = "agenda_empty"
	TKeyImportDone       = "import_done"         // Requires Path, Created, Updated, Skipped
	TKeyEvtSummaryAge    = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth  = "event_summary_birth" // Requires Name (For age 0)
	TKeyErrPrefix        = "err_prefix"
	TKeyErrArguments     = "err_arguments"       // Requires Usage
	TKeyErrInvalidName   = "err_invalid_name"    // Requires Value
	TKeyErrInvalidPhone  = "err_invalid_phone"   // Requires Value
	TKeyErrInvalidBday   = "err_invalid_bday"    // Requires Value
	TKeyErrContactAbsent = "err_contact_absent"  // Requires Key
	TKeyErrPhoneAbsent   = "err_phone_absent"    // Requires Key
	TKeyErrPhoneDup      = "err_phone_duplicate" // Requires Key
	TKeyErrFile          = "err_file"            // Requires Error
	TKeyErrUnexpected    = "err_unexpected"      // Requires Error
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Address Book//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalAlarm   = "VALARM"
	ICalAction  = "DISPLAY"
	ICalDomain  = "goaddressbook"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// ISO8601 duration prefixes accepted for calendar reminders.
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
)

// -----------------------------------------------------------------------------
// Data Formats & UID Generation
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = "2006-01-02T15:04:05Z07:00"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	UIDSalt         = "go-addressbook-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrVCardParse    = "failed to parse vCard stream"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrDateParse     = "unable to parse date"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrSettings      = "failed to load settings"
	ErrSettingsFile  = "failed to read settings file"
	ErrSettingsEnv   = "failed to read settings from environment"
	ErrSettingsShape = "failed to decode settings"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrGrammar       = "failed to build command grammar"
	ErrReadInput     = "failed to read input"
	ErrImportOpen    = "failed to open import file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary = "Birthday: %s"

	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgSettingsLoaded = "Settings loaded"
	MsgSettingsNoFile = "Settings file not found, using defaults"
	MsgCtxCancel      = "Context cancelled, leaving shell"
	MsgCmdDispatch    = "Command dispatched"
	MsgCmdFailed      = "Command failed"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgSkippedCard    = "Skipping vCard with an unusable name"
	MsgSkippedPhone   = "Skipping invalid phone"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgVCardExported  = "vCard export finished"
	MsgVCardImported  = "vCard import finished"
	MsgCalendarEmpty  = "No birthdays to export, emitting empty calendar"
	MsgCalendarDone   = "Calendar generation successful"
	MsgBdayToday      = "Birthday found today"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyReason    = "reason"
	LogKeyName      = "name"
	LogKeyPhone     = "phone"
	LogKeyBirthday  = "birthday"
	LogKeyCount     = "count"
	LogKeyCreated   = "created"
	LogKeyUpdated   = "updated"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"
	LogKeyToday     = "birthdays_today"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"
	LogKeyHorizon   = "horizon_days"
	LogKeyColor     = "color"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompSettings = "settings"
	CompShell    = "shell"
	CompEngine   = "engine"
	CompI18n     = "i18n"
)
