package java

import "fmt"

// MalformedVersionError is returned when a dotted version contains a
// component that is not a number
type MalformedVersionError struct {
	Raw   string // full text handed to ParseVersion
	Token string // offending component
	Err   error
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: component %q: %v", e.Raw, e.Token, e.Err)
}

func (e *MalformedVersionError) Unwrap() error {
	return e.Err
}
