package sender

import "strings"

// Outcome classifies a transport failure.
type Outcome int

const (
	// OutcomeFailure is a transient send failure; later steps of the
	// lead's sequence still attempt.
	OutcomeFailure Outcome = iota
	// OutcomeBounce means the address itself is bad; the lead's whole
	// sequence halts.
	OutcomeBounce
)

// BounceClassifier decides whether a transport error is a hard bounce.
// Providers with structured bounce codes can plug in their own
// implementation; the default inspects the error text.
type BounceClassifier interface {
	Classify(err error) Outcome
}

// bounceKeywords cover the common SMTP rejection phrasings plus the Twilio
// invalid-number codes. Substring matching on provider error text is
// fragile by nature, which is exactly why it sits behind the interface.
var bounceKeywords = []string{
	"bounce",
	"bounced",
	"rejected",
	"mailbox unavailable",
	"mailbox not found",
	"does not exist",
	"invalid recipient",
	"no such user",
	"user unknown",
	"blocked",
	"blacklist",
	"5.1.1",
	"550",
	"invalid 'to' phone number",
	"21211",
	"unsubscribed recipient",
}

type keywordClassifier struct{}

// NewKeywordClassifier returns the default error-text classifier.
func NewKeywordClassifier() BounceClassifier {
	return keywordClassifier{}
}

func (keywordClassifier) Classify(err error) Outcome {
	if err == nil {
		return OutcomeFailure
	}
	text := strings.ToLower(err.Error())
	for _, kw := range bounceKeywords {
		if strings.Contains(text, kw) {
			return OutcomeBounce
		}
	}
	return OutcomeFailure
}
