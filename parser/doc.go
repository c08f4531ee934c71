// Package parser provides the "construct from string, fallibly" capability used by
// tinyinput to turn a trimmed line into a typed value.
//
// # Core Interfaces
//
//   - Parser[T]: parse a string into T, then validate the result
//   - BaseParser[T]: function-backed implementation that most parsers embed
//   - Concrete parsers for bool, integers, floats, complex numbers, durations,
//     times, strings, runes, enums and encoding.TextUnmarshaler types
//
// # Resolution
//
// For[T] picks a parser for T without the caller naming one. Built-in scalar types
// are matched first, then types whose pointer implements encoding.TextUnmarshaler,
// then named types by their underlying kind (for example `type Port uint16`).
//
// Parsers do not rely on callers to trim input; numeric and boolean parsers trim
// surrounding whitespace themselves while string parsers keep values as-is.
package parser
