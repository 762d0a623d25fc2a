package cmdline

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Report writes one diagnostic line for err followed by a usage hint to stderr.
// args is the argument vector err came from; its first element names the
// program unless WithProgramName was given. Report does nothing when err does
// not denote a failure.
func (d *Dispatcher) Report(args []string, err error) {
	if ExitCode(err) == exitCodeSuccess {
		return
	}
	program := d.programName(args)

	tag := color.New(color.FgRed, color.Bold)
	if isTerminal(d.stderr) {
		tag.EnableColor()
	} else {
		tag.DisableColor()
	}

	fmt.Fprintf(d.stderr, "%s: %s %v\n", program, tag.Sprint("error:"), err)
	fmt.Fprintf(d.stderr, "Run '%s %c%s' for usage.\n", program, d.introducer, HelpName)
}

// isTerminal reports whether w is a terminal. color only checks stdout by
// itself, so stderr needs its own check.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
