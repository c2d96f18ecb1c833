package options

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CloseWindowText is returned to the webview after the preferences form is submitted.
const CloseWindowText = "Please close this window to return to the conversation thread."

type Outbox interface {
	Enqueue(ctx context.Context, recipientID string, msg messenger.Message) (string, error)
}

type frameAncestor struct {
	host   string
	origin string
}

// OptionsController serves the room preferences webview and relays its submission back to the conversation.
type OptionsController struct {
	spaIndex       string
	fallbackPage   string
	frameAncestors []frameAncestor
	outbox         Outbox
}

// NewOptionsController creates an OptionsController. buildDir holds the single page app and
// publicDir the fallback options.html. Each allowed origin may embed the webview in a frame.
func NewOptionsController(buildDir, publicDir string, allowedOrigins []string, outbox Outbox) (*OptionsController, error) {
	ancestors := make([]frameAncestor, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		u, err := url.Parse(strings.TrimSpace(origin))
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid frame ancestor origin %q", origin)
		}
		ancestors = append(ancestors, frameAncestor{host: u.Host, origin: u.String()})
	}
	return &OptionsController{
		spaIndex:       filepath.Join(buildDir, "index.html"),
		fallbackPage:   filepath.Join(publicDir, "options.html"),
		frameAncestors: ancestors,
		outbox:         outbox,
	}, nil
}

// ServeOptions godoc
// @Summary      Room preferences webview
// @Description  Serves the preferences single page app when opened from the chat client, or a static fallback page otherwise.
// @Tags         Options
// @Produce      html
// @Param        Referer  header  string  false  "Embedding page"
// @Success      200  {string}  string  "HTML page"
// @Router       /options [get]
func (o *OptionsController) ServeOptions(c *fiber.Ctx) error {
	referer := c.Get(fiber.HeaderReferer)
	if referer == "" {
		return c.SendFile(o.fallbackPage)
	}

	if origin, ok := o.frameAncestorFor(referer); ok {
		c.Set(fiber.HeaderXFrameOptions, "ALLOW-FROM "+origin)
	} else {
		zerolog.Ctx(c.UserContext()).Debug().Str("referer", referer).Msg("Referer is not an allowed frame ancestor")
	}
	return c.SendFile(o.spaIndex)
}

// OptionsPostback godoc
// @Summary      Submit room preferences
// @Description  Sends a confirmation of the chosen preferences to the conversation. The reply is sent asynchronously and its outcome is not reported here.
// @Tags         Options
// @Produce      plain
// @Param        psid     query  string  true   "Page scoped user id"
// @Param        bed      query  string  false  "Bed type"
// @Param        pillows  query  string  false  "Pillow count"
// @Param        view     query  string  false  "View type"
// @Success      200  {string}  string  "Close window instruction"
// @Router       /optionspostback [get]
func (o *OptionsController) OptionsPostback(c *fiber.Ctx) error {
	psid := c.Query("psid")
	text := fmt.Sprintf("Great, I will book you a %s bed, with %s pillows and a %s view.",
		c.Query("bed"), c.Query("pillows"), c.Query("view"))

	ctx := c.UserContext()
	if _, err := o.outbox.Enqueue(ctx, psid, messenger.TextMessage(text)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("psid", psid).Msg("Failed to queue preferences confirmation")
	}

	return c.Status(fiber.StatusOK).SendString(CloseWindowText)
}

func (o *OptionsController) frameAncestorFor(referer string) (string, bool) {
	for _, ancestor := range o.frameAncestors {
		if strings.Contains(referer, ancestor.host) {
			return ancestor.origin, true
		}
	}
	return "", false
}
