// Package commands defines the ratexp CLI, a thin driver over package rational.
//
// # Commands
//
//   - expand   Print the decimal expansion with the repeating cycle marked
//   - digits   Print a truncated digit stream
//   - float    Print floating-point and rounded decimal approximations
//   - eval     Evaluate a prefix expression over integers
//
// # Configuration
//
// An optional TOML file passed with --config overrides the defaults:
//
//	[output]
//	digits = 20
//	overline = false
//	float-precision = 16
//
//	[expand]
//	max-cycle = 100000
package commands
