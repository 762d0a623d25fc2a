package parser

// These helpers keep the token-and-destination shape so they can be bound
// directly as option parsers or reused on any other textual input.

var (
	readFileParser = NewReadableFileParser(nil)
	int32Parser    = NewInt32Parser()
	longParser     = NewLongParser()
)

// ParseReadFile checks that input names a readable file on disk and stores it in output.
func ParseReadFile(input string, output *string) error {
	return Into[string](readFileParser, input, output)
}

// ParseInteger parses input as a 32-bit integer in [-(2^31-1), 2^31-1] and stores it in output.
func ParseInteger(input string, output *int32) error {
	return Into(int32Parser, input, output)
}

// ParseLong parses input as an integer in [-(2^31-1), 2^31-1] and stores it in output.
// The destination is 64 bits wide on every platform.
func ParseLong(input string, output *int64) error {
	return Into[int64](longParser, input, output)
}
