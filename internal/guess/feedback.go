package guess

// Feedback classifies a guess against the secret.
type Feedback int

const (
	FeedbackUnspecified Feedback = iota
	FeedbackTooLow
	FeedbackTooHigh
	FeedbackCorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackUnspecified:
		return "Unspecified"
	case FeedbackTooLow:
		return "Too low"
	case FeedbackTooHigh:
		return "Too high"
	case FeedbackCorrect:
		return "Correct"
	default:
		return "Unknown"
	}
}

// messageKey returns the catalog key of the line emitted for f.
func (f Feedback) messageKey() string {
	switch f {
	case FeedbackTooLow:
		return keyTooLow
	case FeedbackTooHigh:
		return keyTooHigh
	case FeedbackCorrect:
		return keyCorrect
	default:
		return ""
	}
}

// Compare classifies guess against secret. Guesses outside the game range
// are still valid and simply compare low or high.
func Compare(guess, secret int) Feedback {
	switch {
	case guess < secret:
		return FeedbackTooLow
	case guess > secret:
		return FeedbackTooHigh
	default:
		return FeedbackCorrect
	}
}
