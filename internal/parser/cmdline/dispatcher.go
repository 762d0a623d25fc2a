package cmdline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/apstndb/simargs/internal/parser"
)

const (
	// DefaultIntroducer marks a token as an option, as in "/P params.txt".
	DefaultIntroducer = '/'

	// HelpName and DetailedHelpName are reserved option names that write
	// the short and the detailed help screen.
	HelpName         = "H"
	DetailedHelpName = "HD"

	// inlineSeparator splits the inline form "/P:params.txt".
	inlineSeparator = ":"
)

// option binds a name to a closure over its destination.
type option struct {
	name     string
	typeName string
	set      func(value string) error
}

// Info describes a registered option.
type Info struct {
	Name string
	Type string
}

// Dispatcher maps option names to parser closures and walks an argument vector.
// A Dispatcher is meant to be filled once, parsed once and discarded.
// It is not safe for concurrent use.
type Dispatcher struct {
	options      map[string]*option
	introducer   byte
	program      string
	stdout       io.Writer
	stderr       io.Writer
	shortHelp    string
	detailedHelp string
	logger       *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithIntroducer sets the character that starts an option token.
func WithIntroducer(c byte) Option {
	return func(d *Dispatcher) {
		d.introducer = c
	}
}

// WithOutput sets the writers for help screens and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdout = stdout
		d.stderr = stderr
	}
}

// WithHelp sets the short and the detailed help screen.
func WithHelp(short, detailed string) Option {
	return func(d *Dispatcher) {
		d.shortHelp = short
		d.detailedHelp = detailed
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithProgramName sets the name used in diagnostics.
// By default the base name of args[0] is used.
func WithProgramName(name string) Option {
	return func(d *Dispatcher) {
		d.program = name
	}
}

// New creates an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		options:    make(map[string]*option),
		introducer: DefaultIntroducer,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register binds name to fn and dest. When the option is given on the command
// line, fn is called with the raw value and dest. fn must leave dest untouched
// when it fails.
func Register[T any](d *Dispatcher, name string, fn func(string, *T) error, dest *T) error {
	if fn == nil {
		return &InvalidOptionError{Name: name, Reason: "nil parser"}
	}
	if dest == nil {
		return &InvalidOptionError{Name: name, Reason: "nil destination"}
	}
	if err := d.checkName(name); err != nil {
		return err
	}
	if _, exists := d.options[name]; exists {
		return &DuplicateOptionError{Name: name}
	}

	d.options[name] = &option{
		name:     name,
		typeName: fmt.Sprintf("%T", *dest),
		set: func(value string) error {
			return fn(value, dest)
		},
	}
	d.logger.Debug("option registered", "name", name, "type", d.options[name].typeName)
	return nil
}

// AddOption binds name to a typed parser and dest.
func AddOption[T any](d *Dispatcher, name string, p parser.Parser[T], dest *T) error {
	if p == nil {
		return &InvalidOptionError{Name: name, Reason: "nil parser"}
	}
	return Register(d, name, func(value string, out *T) error {
		return parser.Into(p, value, out)
	}, dest)
}

// MustRegister is like Register but panics on error.
// A failing registration is a programming error.
func MustRegister[T any](d *Dispatcher, name string, fn func(string, *T) error, dest *T) {
	if err := Register(d, name, fn, dest); err != nil {
		panic(err)
	}
}

// MustAddOption is like AddOption but panics on error.
func MustAddOption[T any](d *Dispatcher, name string, p parser.Parser[T], dest *T) {
	if err := AddOption(d, name, p, dest); err != nil {
		panic(err)
	}
}

func (d *Dispatcher) checkName(name string) error {
	switch {
	case name == "":
		return &InvalidOptionError{Name: name, Reason: "empty name"}
	case name == HelpName || name == DetailedHelpName:
		return &InvalidOptionError{Name: name, Reason: "reserved for help"}
	case name[0] == d.introducer:
		return &InvalidOptionError{Name: name, Reason: "must not start with the introducer"}
	case strings.Contains(name, inlineSeparator):
		return &InvalidOptionError{Name: name, Reason: "must not contain " + strconv.Quote(inlineSeparator)}
	case strings.ContainsFunc(name, unicode.IsSpace):
		return &InvalidOptionError{Name: name, Reason: "must not contain whitespace"}
	}
	return nil
}

// Names returns the registered option names in sorted order.
func (d *Dispatcher) Names() []string {
	names := lo.Keys(d.options)
	slices.Sort(names)
	return names
}

// Lookup returns information about a registered option.
func (d *Dispatcher) Lookup(name string) (Info, bool) {
	opt, ok := d.options[name]
	if !ok {
		return Info{}, false
	}
	return Info{Name: opt.name, Type: opt.typeName}, true
}

// Parse walks args, which includes the program name at index 0, and applies
// every option to its destination. The canonical form is two tokens
// ("/P params.txt"); the inline form "/P:params.txt" is accepted too.
//
// The first failure stops the walk. Options after it are not applied.
// If a help switch is found, the help screen is written to stdout and ErrHelp
// is returned without applying later options.
func (d *Dispatcher) Parse(args []string) error {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != d.introducer {
			return &UnexpectedArgumentError{Arg: arg}
		}

		name := arg[1:]
		switch name {
		case HelpName:
			return d.writeHelp(d.shortHelp)
		case DetailedHelpName:
			return d.writeHelp(d.detailedHelp)
		}

		name, value, inline := strings.Cut(name, inlineSeparator)

		opt, ok := d.options[name]
		if !ok {
			return &UnknownOptionError{Name: name}
		}

		if !inline {
			if i+1 >= len(args) {
				return &MissingValueError{Name: name}
			}
			i++
			value = args[i]
		}

		if err := opt.set(value); err != nil {
			return &MalformedValueError{Name: name, Value: value, Err: err}
		}
		d.logger.Debug("option parsed", "name", name, "value", value, "inline", inline)
	}

	return nil
}

// Run parses args and returns the process exit status. On failure a single
// diagnostic line and a usage hint are written to stderr.
func (d *Dispatcher) Run(args []string) int {
	err := d.Parse(args)
	if err != nil && !errors.Is(err, ErrHelp) {
		d.logger.Debug("parse failed", "err", err)
	}
	d.Report(args, err)
	return ExitCode(err)
}

func (d *Dispatcher) programName(args []string) string {
	if d.program != "" {
		return d.program
	}
	if len(args) > 0 && args[0] != "" {
		return filepath.Base(args[0])
	}
	return "program"
}

func (d *Dispatcher) writeHelp(text string) error {
	if text == "" {
		text = fmt.Sprintf("Usage: %s [%c%s | %c%s | %c<option> <value>]...\n",
			lo.Ternary(d.program != "", d.program, "program"),
			d.introducer, HelpName, d.introducer, DetailedHelpName, d.introducer)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(d.stdout, text); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return ErrHelp
}
