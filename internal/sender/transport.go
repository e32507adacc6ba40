// Package sender dispatches due messages through rate-limited, rotating
// outbound identities.
package sender

import "context"

// EmailRequest is one outbound email handed to a transport backend.
type EmailRequest struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailTransport dispatches a single email. Both backends behave
// identically from the sender's point of view; only the wire call differs.
type EmailTransport interface {
	Name() string
	Send(ctx context.Context, req EmailRequest) error
}

// SMSRequest is one outbound text message.
type SMSRequest struct {
	From string
	To   string
	Body string
}

// SMSTransport dispatches a single SMS and returns the provider's message
// id when it has one.
type SMSTransport interface {
	Name() string
	Send(ctx context.Context, req SMSRequest) (string, error)
}
