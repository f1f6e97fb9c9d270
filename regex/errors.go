package regex

import "fmt"

// ParseError reports a malformed pattern: an unsupported character, an
// unmatched parenthesis, or a pre/postfix buffer that outgrew its limit.
type ParseError struct {
	Pos int
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parser error at %d: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("parser error at %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(i int, msg string, inner error) *ParseError {
	return &ParseError{Pos: i, Msg: msg, Err: inner}
}

// ConstructionError reports a postfix stream that does not reduce to exactly
// one NFA fragment.
type ConstructionError struct {
	Pos int
	Msg string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction error at %d: %s", e.Pos, e.Msg)
}

func newConstructionError(i int, format string, args ...any) *ConstructionError {
	return &ConstructionError{Pos: i, Msg: fmt.Sprintf(format, args...)}
}

// CapacityError reports that a configured Limits bound was hit while building.
type CapacityError struct {
	Resource string
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s exceeds limit of %d", e.Resource, e.Limit)
}
