package svgpath

import (
	"strconv"
)

// scanner walks over path data, one byte at a time.
// Only ASCII is meaningful in path data, so bytes are enough.
type scanner struct {
	data string
	pos  int
}

func isDelimiter(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (s *scanner) done() bool { return s.pos >= len(s.data) }

func (s *scanner) skipDelimiters() {
	for s.pos < len(s.data) && isDelimiter(s.data[s.pos]) {
		s.pos++
	}
}

// nextIsNumber consumes the delimiters and reports whether
// a number starts at the new position, without consuming it.
func (s *scanner) nextIsNumber() bool {
	s.skipDelimiters()
	if s.done() {
		return false
	}
	c := s.data[s.pos]
	return c == '-' || c == '.' || isDigit(c)
}

// readNumber skips the delimiters then reads an optional minus sign,
// digits and at most one decimal point. A second '.' ends the number
// and starts the next one, so that "1.5.5" is read as 1.5 then 0.5.
// At least one digit is required: on success the position always advances.
func (s *scanner) readNumber() (float64, error) {
	s.skipDelimiters()
	start := s.pos
	if s.pos < len(s.data) && s.data[s.pos] == '-' {
		s.pos++
	}
	digits, seenDot := 0, false
	for ; s.pos < len(s.data); s.pos++ {
		c := s.data[s.pos]
		if isDigit(c) {
			digits++
		} else if c == '.' && !seenDot {
			seenDot = true
		} else {
			break
		}
	}
	token := s.data[start:s.pos]
	if digits == 0 {
		return 0, &NumberError{Text: token, Pos: start}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil { // out of range
		return 0, &NumberError{Text: token, Pos: start}
	}
	return f, nil
}

// ParseNumbers reads a list of numbers separated by commas and/or spaces,
// using the same grammar as path data. It is used for attributes such as
// polygon points, viewBox or transform arguments.
func ParseNumbers(v string) ([]float64, error) {
	s := scanner{data: v}
	var out []float64
	for s.nextIsNumber() {
		f, err := s.readNumber()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if !s.done() {
		return nil, &NumberError{Text: v[s.pos:], Pos: s.pos}
	}
	return out, nil
}
