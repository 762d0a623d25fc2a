// Package cmdline dispatches short command-line options to typed destinations.
//
// Options are registered by name together with a value parser and a pointer
// to the variable that receives the parsed value:
//
//	var p struct {
//	    ParamFile string
//	    Threads   int32
//	}
//	d := cmdline.New(cmdline.WithHelp(shortHelp, detailedHelp))
//	cmdline.MustRegister(d, "P", parser.ParseReadFile, &p.ParamFile)
//	cmdline.MustAddOption(d, "c", parser.NewInt32Parser(), &p.Threads)
//	os.Exit(d.Run(os.Args))
//
// The command line is a sequence of "/<name> <value>" pairs. The inline form
// "/<name>:<value>" is accepted too. "/H" and "/HD" write the short and the
// detailed help screen. Names are case-sensitive and matched exactly.
//
// Parse is strict: an unknown option, a missing value or a value rejected by
// its parser stops the walk and is returned as a typed error. Run wraps Parse
// for main functions and turns the result into an exit status.
package cmdline
