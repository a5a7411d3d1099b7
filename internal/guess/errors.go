package guess

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/numberguess/internal/platform/errors"
)

// ErrInputClosed indicates the input ended before the secret was guessed.
var ErrInputClosed = apperrors.New(apperrors.CodeInputClosed, "input closed before the number was guessed")

// ErrSessionFinished indicates Run was called on a session that already ran.
var ErrSessionFinished = errors.New("session already finished")

// InputFormatError reports an input token that is not a base-10 integer.
// It is carried as the cause of an apperrors.CodeInputFormat error.
type InputFormatError struct {
	Token string
	Err   error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("guess %q is not an integer: %v", e.Token, e.Err)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

func newInputFormatError(token string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeInputFormat,
		fmt.Sprintf("parse guess %q", token),
		map[string]string{"Token": token},
		&InputFormatError{Token: token, Err: cause},
	)
}

// Policy decides what a session does with a token that is not an integer.
type Policy int

const (
	// PolicyFail ends the session with an input format error.
	PolicyFail Policy = iota
	// PolicyReprompt reports the bad token and prompts again.
	PolicyReprompt
)

func (p Policy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	case PolicyReprompt:
		return "reprompt"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "fail" or "reprompt". An empty value is PolicyFail.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "fail":
		return PolicyFail, nil
	case "reprompt":
		return PolicyReprompt, nil
	default:
		return PolicyFail, fmt.Errorf("unknown invalid-input policy %q (want fail or reprompt)", value)
	}
}
