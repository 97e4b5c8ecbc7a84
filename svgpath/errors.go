package svgpath

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand  = errors.New("svgpath: unknown path command")
	ErrUnsupported     = errors.New("svgpath: unsupported path command")
	ErrMalformedNumber = errors.New("svgpath: malformed number")
)

// CommandError is returned when an unrecognized letter is found
// where a command is expected.
type CommandError struct {
	Char rune
	Pos  int // byte offset in the path data
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrUnknownCommand, e.Char, e.Pos)
}

func (e *CommandError) Unwrap() error { return ErrUnknownCommand }

// UnsupportedError is returned for commands which are recognized
// but deliberately not implemented.
type UnsupportedError struct {
	Command string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupported, e.Command)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// NumberError is returned when a number is expected but the
// input holds no digit at that position.
type NumberError struct {
	Text string // the offending token, possibly empty
	Pos  int
}

func (e *NumberError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: missing number at offset %d", ErrMalformedNumber, e.Pos)
	}
	return fmt.Sprintf("%s %q at offset %d", ErrMalformedNumber, e.Text, e.Pos)
}

func (e *NumberError) Unwrap() error { return ErrMalformedNumber }
