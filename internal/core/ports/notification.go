package ports

import "context"

// Notification is a single outbound email job.
type Notification struct {
	// BookingID plus Recipient identify the job for deduplication.
	BookingID string
	// Recipient is "guest" or "host"; used as a metric label.
	Recipient string
	To        string
	Subject   string
	Body      string
}

// NotificationDispatcher accepts notification jobs for asynchronous
// delivery. Enqueue never blocks the caller beyond channel buffering and
// never reports delivery errors back.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}

// Mailer sends a single email message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
