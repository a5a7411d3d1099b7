// Package guess runs the number-guessing game.
//
// A Session owns a secret number drawn from [MinNumber, MaxNumber] and plays
// one game over a text stream pair: it prompts, reads a whitespace-delimited
// integer, and answers too low, too high, or correct until the secret is
// found.
//
// # Randomness
//
// The secret is drawn from the random.Source passed in Options. Passing
// random.New(seed) makes a session reproducible; leaving it nil seeds a
// source from crypto/rand.
//
// # Malformed input
//
// A token that is not an integer ends the session with an error whose chain
// contains *InputFormatError, unless Options.OnInvalid is PolicyReprompt, in
// which case the token is reported and the player is prompted again. In both
// cases the secret is left untouched.
package guess

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/louisbranch/numberguess/internal/platform/i18n/catalog"
	"github.com/louisbranch/numberguess/internal/platform/id"
	"github.com/louisbranch/numberguess/internal/random"
)

// Inclusive bounds of the secret number.
const (
	MinNumber = 1
	MaxNumber = 100
)

const (
	keyPrompt       = "game.prompt"
	keyTooLow       = "game.too_low"
	keyTooHigh      = "game.too_high"
	keyCorrect      = "game.correct"
	keyInvalidInput = "game.invalid_input"
)

var tracer = otel.Tracer("github.com/louisbranch/numberguess/internal/guess")

// Options configures a Session.
type Options struct {
	// In supplies guesses. Required.
	In io.Reader
	// Out receives prompts and feedback. Required.
	Out io.Writer
	// Random draws the secret. Nil seeds a source from crypto/rand.
	Random random.Source
	// Printer localizes output. Nil prints en-US.
	Printer *message.Printer
	// OnInvalid decides what happens to non-integer tokens.
	OnInvalid Policy
	// ID identifies the session in logs and traces. Empty generates one.
	ID string
}

// Result summarizes a finished session.
type Result struct {
	SessionID string
	// Guesses counts integer guesses read, including the winning one.
	Guesses int
	// Rejected counts tokens skipped under PolicyReprompt.
	Rejected int
}

// Session is one game from secret generation to a correct guess.
// It is not safe for concurrent use.
type Session struct {
	id        string
	secret    int
	in        *tokenReader
	out       io.Writer
	printer   *message.Printer
	onInvalid Policy
	ran       bool
}

// New draws the secret and returns a session ready to Run.
func New(opts Options) (*Session, error) {
	if opts.In == nil {
		return nil, errors.New("input reader is required")
	}
	if opts.Out == nil {
		return nil, errors.New("output writer is required")
	}
	switch opts.OnInvalid {
	case PolicyFail, PolicyReprompt:
	default:
		return nil, fmt.Errorf("unknown invalid-input policy %d", opts.OnInvalid)
	}

	src := opts.Random
	if src == nil {
		entropy, _, err := random.NewFromEntropy()
		if err != nil {
			return nil, err
		}
		src = entropy
	}
	secret, err := drawSecret(src)
	if err != nil {
		return nil, err
	}

	sessionID := opts.ID
	if sessionID == "" {
		sessionID, err = id.NewID()
		if err != nil {
			return nil, err
		}
	}

	printer := opts.Printer
	if printer == nil {
		printer = catalog.Default().Printer(catalog.BaseLocale)
	}

	return &Session{
		id:        sessionID,
		secret:    secret,
		in:        newTokenReader(opts.In),
		out:       opts.Out,
		printer:   printer,
		onInvalid: opts.OnInvalid,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run plays the game until the secret is guessed.
//
// Output, in order, is a prompt before every read, one feedback line after
// every integer guess, and a single congratulation once the guess matches.
// Run returns ErrInputClosed if input ends first and ErrSessionFinished if
// called twice. ctx only carries trace context; a blocked read is not
// interrupted.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.ran {
		return Result{}, ErrSessionFinished
	}
	s.ran = true

	ctx, span := tracer.Start(ctx, "guess.session", trace.WithAttributes(
		attribute.String("guess.session_id", s.id),
		attribute.String("guess.on_invalid", s.onInvalid.String()),
	))
	defer span.End()

	result, err := s.play(ctx)
	span.SetAttributes(
		attribute.Int("guess.count", result.Guesses),
		attribute.Int("guess.rejected", result.Rejected),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return result, err
}

func (s *Session) play(ctx context.Context) (Result, error) {
	span := trace.SpanFromContext(ctx)
	result := Result{SessionID: s.id}

	for {
		if err := s.write(keyPrompt, false, MinNumber, MaxNumber); err != nil {
			return result, err
		}
		token, err := s.in.next()
		if err != nil {
			return result, err
		}

		value, err := parseGuess(token)
		if err != nil {
			if s.onInvalid != PolicyReprompt {
				return result, err
			}
			result.Rejected++
			span.AddEvent("guess.rejected")
			if err := s.write(keyInvalidInput, true, token); err != nil {
				return result, err
			}
			continue
		}

		result.Guesses++
		feedback := Compare(value, s.secret)
		span.AddEvent("guess", trace.WithAttributes(
			attribute.Int("guess.attempt", result.Guesses),
			attribute.String("guess.feedback", feedback.String()),
		))
		if err := s.write(feedback.messageKey(), true); err != nil {
			return result, err
		}
		if feedback == FeedbackCorrect {
			return result, nil
		}
	}
}

// write prints a catalog message, followed by a newline when line is set.
func (s *Session) write(key string, line bool, args ...any) error {
	text := s.printer.Sprintf(key, args...)
	if line {
		text += "\n"
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func drawSecret(src random.Source) (int, error) {
	n := MaxNumber - MinNumber + 1
	v := src.IntN(n)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("random source returned %d, want [0, %d)", v, n)
	}
	return MinNumber + v, nil
}
