package token

import "fmt"

// LexError is a typed, structured tokenization failure: malformed input
// reported with the offending byte position and a stable Code, in the
// same Code/Message/Cause shape the rest of the module uses for typed
// errors (see match.ProgrammerError).
type LexError struct {
	Code    string
	Message string
	Pos     int
	Cause   error
}

const (
	ErrUnrecognizedChar = "UNRECOGNIZED_CHARACTER"
	ErrUnterminatedStr  = "UNTERMINATED_STRING"
	ErrDanglingEscape   = "DANGLING_ESCAPE"
)

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Code, e.Pos, e.Message)
}

func (e *LexError) Unwrap() error { return e.Cause }

func newLexError(code string, pos int, format string, args ...any) *LexError {
	return &LexError{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
