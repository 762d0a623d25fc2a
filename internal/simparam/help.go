package simparam

import (
	"github.com/MakeNowJust/heredoc/v2"
)

// ShortHelp is written for /H.
var ShortHelp = heredoc.Doc(`
	Usage: simargs [/H | /HD | /<option> <value>]...

	Options take their value from the next argument (/P params.txt)
	or after a colon in the same argument (/P:params.txt).

	Common options:
	  /P <file>     Parameter file
	  /PP <file>    Pre-parameter file
	  /O <prefix>   Prefix of all output files
	  /c <n>        Number of worker threads

	Run 'simargs /HD' for the full option reference.
`)

// DetailedHelp is written for /HD.
var DetailedHelp = heredoc.Doc(`
	Usage: simargs [/H | /HD | /<option> <value>]...

	Input files (must exist and be readable):
	  /P <file>     Parameter file
	  /PP <file>    Pre-parameter file
	  /A <file>     Administrative division file
	  /D <file>     Population density file
	  /s <file>     School file
	  /L <file>     Load the household network from this file

	Output:
	  /O <prefix>   Prefix of all output files
	  /S <file>     Save the household network to this file (not with /L)
	  /BM <format>  Bitmap format: PNG or BMP (default PNG)

	Run control:
	  /c <n>        Number of worker threads, at least 1 (default 1)
	  /N <n>        Number of realisations, at least 1 (default 1)
	  /R <x>        Scaling applied to R0, greater than 0 (default 1.0)

	Seeds (integers in [-2147483647, 2147483647]):
	  /SS1 <n>      First seed of the network setup
	  /SS2 <n>      Second seed of the network setup
	  /RS1 <n>      First seed of the runs
	  /RS2 <n>      Second seed of the runs

	Help:
	  /H            Show the short usage summary
	  /HD           Show this reference

	Option names are case-sensitive. Integers are plain decimal numbers
	with an optional sign and no surrounding spaces.

	Environment:
	  SIMARGS_LOG_LEVEL   DEBUG, INFO, WARN or ERROR (default WARN)
`)
