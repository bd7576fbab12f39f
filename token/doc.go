// Package token defines the lexical unit kinds produced by the scanner
// (package rufum/scanner) and the Unit type that pairs a kind with its
// captured text and source position.
//
package token
