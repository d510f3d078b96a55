package rfc822

import "fmt"

// ParseError reports a violated grammar expectation: a missing required
// field, an unrecognized symbolic value, or a malformed separator. The
// message names the construct that was being recognized and, where one was
// read, the offending token.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
