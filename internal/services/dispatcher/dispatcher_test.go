//go:generate go tool mockgen -source=dispatcher.go -destination=dispatcher_mock_test.go -package=dispatcher
package dispatcher

import (
	"context"
	"errors"
	"testing"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testServerURL = "https://bot.example.com"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "punctuation and case", in: "Start Connect!", want: "start connect"},
		{name: "surrounding whitespace", in: "  start connect  ", want: "start connect"},
		{name: "punctuation inside words", in: "st.art, con-nect?", want: "start connect"},
		{name: "underscores and digits are kept", in: "Room_42!", want: "room_42"},
		{name: "only punctuation", in: "?!...", want: ""},
		{name: "inner whitespace is preserved", in: "start  connect", want: "start  connect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDispatcher_Respond(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(nil, testServerURL)

	t.Run("start connect opens the webview", func(t *testing.T) {
		reply := d.Respond(&messenger.InboundMessage{Text: "Start Connect!"})
		assert.Equal(t, RoomPreferences(testServerURL), reply)
	})

	t.Run("unknown text is echoed unmodified", func(t *testing.T) {
		reply := d.Respond(&messenger.InboundMessage{Text: "Hello, World!"})
		assert.Equal(t, "Hello, World!", reply.Text)
		assert.Nil(t, reply.Attachment)
	})

	t.Run("no text is not understood", func(t *testing.T) {
		reply := d.Respond(&messenger.InboundMessage{MID: "mid.1"})
		assert.Equal(t, messenger.TextMessage(NotUnderstoodText), reply)
	})

	t.Run("nil message is not understood", func(t *testing.T) {
		assert.Equal(t, messenger.TextMessage(NotUnderstoodText), d.Respond(nil))
	})
}

func TestDispatcher_RespondPostback(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(nil, testServerURL)

	t.Run("command payload opens the webview", func(t *testing.T) {
		reply := d.RespondPostback(&messenger.Postback{Title: "Connect", Payload: "Start Connect"})
		assert.Equal(t, RoomPreferences(testServerURL), reply)
	})

	t.Run("underscores are not stripped", func(t *testing.T) {
		reply := d.RespondPostback(&messenger.Postback{Title: "Connect", Payload: "START_CONNECT"})
		assert.Equal(t, messenger.TextMessage(NotUnderstoodText), reply)
	})

	t.Run("unknown payload is not understood", func(t *testing.T) {
		reply := d.RespondPostback(&messenger.Postback{Payload: "GET_STARTED"})
		assert.Equal(t, messenger.TextMessage(NotUnderstoodText), reply)
	})

	t.Run("nil postback is not understood", func(t *testing.T) {
		assert.Equal(t, messenger.TextMessage(NotUnderstoodText), d.RespondPostback(nil))
	})
}

func TestDispatcher_HandleMessage(t *testing.T) {
	t.Parallel()

	t.Run("reply is queued for the sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockOutbox := NewMockOutbox(ctrl)
		d := NewDispatcher(mockOutbox, testServerURL)

		mockOutbox.EXPECT().
			Enqueue(gomock.Any(), "psid-1", messenger.TextMessage("anything else")).
			Return("delivery-1", nil).
			Times(1)

		err := d.HandleMessage(context.Background(), "psid-1", &messenger.InboundMessage{Text: "anything else"})
		require.NoError(t, err)
	})

	t.Run("webview template is queued for start connect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockOutbox := NewMockOutbox(ctrl)
		d := NewDispatcher(mockOutbox, testServerURL)

		mockOutbox.EXPECT().
			Enqueue(gomock.Any(), "psid-1", RoomPreferences(testServerURL)).
			Return("delivery-1", nil).
			Times(1)

		err := d.HandleMessage(context.Background(), "psid-1", &messenger.InboundMessage{Text: "START CONNECT."})
		require.NoError(t, err)
	})

	t.Run("queue failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockOutbox := NewMockOutbox(ctrl)
		d := NewDispatcher(mockOutbox, testServerURL)

		queueErr := errors.New("recipient id is required")
		mockOutbox.EXPECT().
			Enqueue(gomock.Any(), "", gomock.Any()).
			Return("", queueErr)

		err := d.HandleMessage(context.Background(), "", &messenger.InboundMessage{Text: "hi"})
		require.ErrorIs(t, err, queueErr)
	})
}

func TestDispatcher_HandlePostback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockOutbox := NewMockOutbox(ctrl)
	d := NewDispatcher(mockOutbox, testServerURL)

	mockOutbox.EXPECT().
		Enqueue(gomock.Any(), "psid-2", messenger.TextMessage(NotUnderstoodText)).
		Return("delivery-2", nil)

	err := d.HandlePostback(context.Background(), "psid-2", &messenger.Postback{Payload: "GET_STARTED"})
	require.NoError(t, err)
}

func TestRoomPreferences(t *testing.T) {
	t.Parallel()

	reply := RoomPreferences(testServerURL + "/")
	require.NotNil(t, reply.Attachment)
	assert.Empty(t, reply.Text)
	assert.Equal(t, "template", reply.Attachment.Type)
	assert.Equal(t, "button", reply.Attachment.Payload.TemplateType)
	assert.Equal(t, "Now, you can start the connect app.", reply.Attachment.Payload.Text)
	require.Len(t, reply.Attachment.Payload.Buttons, 1)

	button := reply.Attachment.Payload.Buttons[0]
	assert.Equal(t, "web_url", button.Type)
	assert.Equal(t, "https://bot.example.com/options", button.URL)
	assert.Equal(t, "GTM 4 Connect", button.Title)
	assert.Equal(t, "compact", button.WebviewHeightRatio)
	assert.True(t, button.MessengerExtensions)
}
