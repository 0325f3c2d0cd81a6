// Package mail defines the outbound notification interface.
package mail

import "context"

// Message is one outbound HTML-bodied notification.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers notification mail. It decouples the application logic from
// the concrete mail relay client.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
