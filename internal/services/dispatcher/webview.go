package dispatcher

import (
	"strings"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
)

const (
	// OptionsPath is the route serving the room preferences webview.
	OptionsPath = "/options"

	roomPreferencesText        = "Now, you can start the connect app."
	roomPreferencesButtonTitle = "GTM 4 Connect"
)

// RoomPreferences builds the button template that opens the options webview hosted at serverURL.
func RoomPreferences(serverURL string) messenger.Message {
	return messenger.Message{
		Attachment: &messenger.Attachment{
			Type: messenger.AttachmentTypeTemplate,
			Payload: messenger.TemplatePayload{
				TemplateType: messenger.TemplateTypeButton,
				Text:         roomPreferencesText,
				Buttons: []messenger.Button{
					{
						Type:                messenger.ButtonTypeWebURL,
						URL:                 strings.TrimSuffix(serverURL, "/") + OptionsPath,
						Title:               roomPreferencesButtonTitle,
						WebviewHeightRatio:  messenger.WebviewHeightCompact,
						MessengerExtensions: true,
					},
				},
			},
		},
	}
}
