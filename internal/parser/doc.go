// Package parser provides generic parsing infrastructure for simargs.
//
// This package implements type-safe value parsers using Go generics. A value
// parser turns one raw command-line token into a validated typed value. The
// parsers are not tied to the command line: the same parsers back the
// standalone helpers (ParseReadFile, ParseInteger, ParseLong) which can be
// used for any textual input.
//
// # Core Interfaces
//
//   - Parser[T]: Basic parsing interface for any type T
//   - BaseParser[T]: Function-backed implementation of Parser[T]
//   - Validator[T]: Composable validation applied after parsing
//
// # Strictness
//
// Unlike parsers meant for configuration files, the numeric parsers here do
// not trim whitespace. The host shell has already split the command line, so
// a token such as " 42" is a user error and is rejected.
package parser
