// Command sendapi-stub is a local stand-in for the Messenger Send API. Point GRAPH_API_URL at it
// to watch the replies the bridge would send without a real page access token.
package main

import (
	"encoding/json"
	"flag"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func main() {
	logger := logging.GetAndSetDefaultLogger("sendapi-stub")
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/:version/me/messages", func(c *fiber.Ctx) error {
		var req messenger.SendRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fiber.Map{"message": "Invalid payload"}})
		}
		if c.Query("access_token") == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fiber.Map{"message": "An access token is required"}})
		}
		if req.Recipient.ID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fiber.Map{"message": "The parameter recipient is required"}})
		}
		logger.Info().
			Str("version", c.Params("version")).
			Str("recipientId", req.Recipient.ID).
			RawJSON("envelope", c.Body()).
			Msg("Send API call received")
		return c.JSON(fiber.Map{
			"recipient_id": req.Recipient.ID,
			"message_id":   "m_" + uuid.NewString(),
		})
	})

	logger.Info().Str("addr", *addr).Msg("Send API stub listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Send API stub failed")
	}
}
