// Package messenger holds the Messenger Platform wire types used by the webhook and the Send API.
package messenger

const (
	// ObjectPage is the webhook object value for page subscriptions.
	ObjectPage = "page"

	AttachmentTypeTemplate = "template"
	TemplateTypeButton     = "button"
	ButtonTypeWebURL       = "web_url"

	// WebviewHeightCompact renders the webview at half the chat height.
	WebviewHeightCompact = "compact"
)

// WebhookRequest is the body the platform POSTs to the webhook endpoint.
type WebhookRequest struct {
	// Object is the subscription type. Only "page" is handled.
	Object string `json:"object"`
	// Entry is the batch of page entries.
	Entry []Entry `json:"entry"`
}

// Entry is a single page entry of a webhook batch.
type Entry struct {
	// ID is the page id.
	ID string `json:"id"`
	// Time is the update time in epoch milliseconds.
	Time int64 `json:"time"`
	// Messaging holds the messaging events. The platform delivers one event per entry.
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is an inbound message or postback.
type MessagingEvent struct {
	Sender    Participant     `json:"sender"`
	Recipient Participant     `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *InboundMessage `json:"message,omitempty"`
	Postback  *Postback       `json:"postback,omitempty"`
}

// Participant identifies a sender or recipient by PSID or page id.
type Participant struct {
	ID string `json:"id"`
}

// InboundMessage is the message part of a messaging event.
type InboundMessage struct {
	// MID is the platform message id.
	MID string `json:"mid"`
	// Text is empty for attachment-only messages.
	Text string `json:"text,omitempty"`
	// IsEcho is set when the message was sent by the page itself.
	IsEcho bool `json:"is_echo,omitempty"`
}

// Postback is the payload of a button tap.
type Postback struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// SendRequest is the Send API envelope.
type SendRequest struct {
	Recipient Participant `json:"recipient"`
	Message   Message     `json:"message"`
}

// Message is an outbound response: either plain text or a structured attachment.
type Message struct {
	Text       string      `json:"text,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Attachment is a structured message attachment.
type Attachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

// TemplatePayload describes a template attachment.
type TemplatePayload struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
}

// Button is a template button.
type Button struct {
	Type                string `json:"type"`
	URL                 string `json:"url,omitempty"`
	Title               string `json:"title"`
	WebviewHeightRatio  string `json:"webview_height_ratio,omitempty"`
	MessengerExtensions bool   `json:"messenger_extensions,omitempty"`
}

// TextMessage returns a plain text message.
func TextMessage(text string) Message {
	return Message{Text: text}
}
