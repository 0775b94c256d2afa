package notify

import "context"

// Attachment is a file carried with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a transport-independent notification. From may be empty, in
// which case the transport's default sender applies.
type Message struct {
	To         string
	From       string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Notifier delivers messages. Transport (SMTP, desktop client, log) is
// entirely behind this interface.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// State classifies the outcome of a notification step.
type State string

const (
	StateSent        State = "sent"
	StateNoRecipient State = "no_recipient"
	StateFailed      State = "failed"
)

// Delivery reports how the notification step of an operation went. It is a
// secondary outcome: a failed delivery never reverses the committed state
// transition it describes.
type Delivery struct {
	State     State
	Recipient string
	Reason    string
}

// Deliver sends msg and folds the result into a Delivery.
func Deliver(ctx context.Context, n Notifier, msg Message) Delivery {
	if err := n.Send(ctx, msg); err != nil {
		return Delivery{State: StateFailed, Recipient: msg.To, Reason: err.Error()}
	}
	return Delivery{State: StateSent, Recipient: msg.To}
}

// NoRecipient reports that no counterpart existed to notify.
func NoRecipient(reason string) Delivery {
	return Delivery{State: StateNoRecipient, Reason: reason}
}
