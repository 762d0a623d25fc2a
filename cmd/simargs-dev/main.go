// Command simargs-dev provides development tools for simargs.
//
// It lists the option table and checks a command line without running the
// front end.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/kballard/go-shellquote"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/afero"

	"github.com/apstndb/simargs/internal/parser/cmdline"
	"github.com/apstndb/simargs/internal/simparam"
)

const frontEndName = "simargs"

// errCheckFailed is returned after the diagnostic has been written.
var errCheckFailed = errors.New("check failed")

type optionsCommand struct {
	out io.Writer
}

type checkCommand struct {
	Line   string `long:"line" short:"l" required:"true" description:"Command line to check, quoted as in a shell"`
	Format string `long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format of the resolved parameters"`

	out    io.Writer
	errOut io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	p := flags.NewNamedParser("simargs-dev", flags.HelpFlag|flags.PassDoubleDash)

	if _, err := p.AddCommand("options",
		"List the command-line options of simargs",
		"Render the option table of simargs: option name, destination type, parameter field and description.",
		&optionsCommand{out: stdout}); err != nil {
		return err
	}

	if _, err := p.AddCommand("check",
		"Check a simargs command line",
		heredoc.Doc(`
			Split --line with shell quoting rules, dispatch it exactly as simargs
			would, and print the resolved parameters.

			Examples:
			  simargs-dev check --line '/P params.txt /c 4'
			  simargs-dev check --format json --line '/N 10 /BM bmp'`),
		&checkCommand{out: stdout, errOut: stderr}); err != nil {
		return err
	}

	if _, err := p.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}
	return nil
}

// Execute implements flags.Commander.
func (c *optionsCommand) Execute([]string) error {
	// Types only; file options are never probed here.
	d := cmdline.New(cmdline.WithOutput(io.Discard, io.Discard))
	var params simparam.Param
	if err := simparam.BindFs(d, &params, afero.NewMemMapFs()); err != nil {
		return err
	}

	table := tablewriter.NewTable(c.out,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"Option", "Type", "Field", "Description"})

	for _, s := range simparam.Options() {
		info, _ := d.Lookup(s.Name)
		if err := table.Append([]string{"/" + s.Name, info.Type, s.Field, s.Description}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Execute implements flags.Commander.
func (c *checkCommand) Execute([]string) error {
	words, err := shellquote.Split(c.Line)
	if err != nil {
		return fmt.Errorf("failed to split --line: %w", err)
	}
	if len(words) > 0 && filepath.Base(words[0]) == frontEndName {
		words = words[1:]
	}
	argv := append([]string{frontEndName}, words...)

	params := simparam.Default()
	d := cmdline.New(
		cmdline.WithProgramName(frontEndName),
		cmdline.WithOutput(c.out, c.errOut),
		cmdline.WithHelp(simparam.ShortHelp, simparam.DetailedHelp),
	)
	if err := simparam.Bind(d, &params); err != nil {
		return err
	}

	err = d.Parse(argv)
	switch {
	case errors.Is(err, cmdline.ErrHelp):
		return nil
	case err != nil:
		d.Report(argv, err)
		return errCheckFailed
	}

	if err := params.Validate(); err != nil {
		d.Report(argv, err)
		return errCheckFailed
	}

	opts := []yaml.EncodeOption{}
	if c.Format == "json" {
		opts = append(opts, yaml.JSON())
	}
	if err := yaml.NewEncoder(c.out, opts...).Encode(params); err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	return nil
}
