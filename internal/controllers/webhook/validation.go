package webhook

import (
	"fmt"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
)

// MalformedPayloadError is returned when a page webhook batch is missing fields every event needs.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed webhook payload: " + e.Reason
}

// validateBatch checks that every entry carries a first messaging event with a sender.
// It runs before anything is dispatched so a rejected batch triggers no replies.
func validateBatch(req *messenger.WebhookRequest) error {
	for i, entry := range req.Entry {
		if len(entry.Messaging) == 0 {
			return &MalformedPayloadError{Reason: fmt.Sprintf("entry[%d] has no messaging events", i)}
		}
		if entry.Messaging[0].Sender.ID == "" {
			return &MalformedPayloadError{Reason: fmt.Sprintf("entry[%d].messaging[0] has no sender id", i)}
		}
	}
	return nil
}
