/*
Package tgff parses files in the TGFF (Task Graphs For Free) format.

A TGFF file is generated by the tgff utility from a TGFFOPT file and contains
global attributes, task graphs and data tables:

	@HYPERPERIOD 1180

	@TASK_GRAPH 0 {
		PERIOD 590
		TASK t0_0 TYPE 2
		TASK t0_1 TYPE 7
		ARC a0_0 FROM t0_0 TO t0_1 TYPE 0
		HARD_DEADLINE d0_0 ON t0_1 AT 590
	}

	@PE 0 {
	# price area
	  70.07 0.0017
	#------------
	# type version task_time
	  0 0 34.5
	  1 0 12.25
	}

Parsing is a single pass over an in-memory buffer, the first syntax error stops it.
Subpackages:
  - source: source buffer and rune cursor with line tracking;
  - encode: JSON, YAML and plain text renderings of parsed content;
  - cmd/tgff: console utility checking and dumping TGFF files.
*/
package tgff

import (
	"fmt"

	"github.com/ava12/tgff/source"
)

// Error is the parsing error. The first error aborts parsing.
type Error struct {
	// Line contains 1-based line number where the error was detected.
	Line int

	// Message contains error description without position information.
	Message string
}

// NewError creates new Error structure.
func NewError(line int, msg string) *Error {
	return &Error{Line: line, Message: msg}
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(line int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(line, msg)
}

// Error returns message with line number, e.g. "expected `}` on line 12".
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Message, e.Line)
}

// Parse parses a string containing a TGFF file.
func Parse(input string) (*Content, error) {
	return NewParser(input).Process()
}

// ParseBytes parses a TGFF file content, name is used only for source identification.
func ParseBytes(name string, input []byte) (*Content, error) {
	return newParser(source.New(name, input)).Process()
}
