package app

import (
	"context"
	"fmt"

	_ "github.com/DIMO-Network/messenger-webview-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/messenger-webview-api/internal/config"
	"github.com/DIMO-Network/messenger-webview-api/internal/controllers/options"
	"github.com/DIMO-Network/messenger-webview-api/internal/controllers/webhook"
	"github.com/DIMO-Network/messenger-webview-api/internal/services/dispatcher"
	"github.com/DIMO-Network/messenger-webview-api/internal/services/outbox"
	"github.com/DIMO-Network/messenger-webview-api/internal/services/sendapi"
	"github.com/DIMO-Network/messenger-webview-api/internal/services/seencache"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CreateServers builds the outbox and its Send API client, starts delivering on group,
// and returns the HTTP app.
func CreateServers(ctx context.Context, group *errgroup.Group, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	sendClient := sendapi.NewClient(nil, settings.GraphAPIURL, settings.GraphAPIVersion, settings.PageAccessToken)

	box, err := outbox.New(sendClient, outbox.NewMetricsObserver(logger), settings.SendWorkers, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox: %w", err)
	}
	group.Go(func() error {
		defer box.Close() //nolint:errcheck
		return box.Run(logger.WithContext(ctx))
	})
	logger.Info().Int("workers", settings.SendWorkers).Msg("Outbound delivery started")

	app, err := CreateFiberApp(logger, box, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, box dispatcher.Outbox, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting Messenger Webview API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	// static directories are checked before any route, public first
	app.Static("/", settings.PublicDir)
	app.Static("/", settings.BuildDir)

	replyDispatcher := dispatcher.NewDispatcher(box, settings.ServerURL)
	webhookController := webhook.NewWebhookController(settings.VerifyToken, replyDispatcher, seencache.New(settings.DedupeTTL))
	optionsController, err := options.NewOptionsController(settings.BuildDir, settings.PublicDir, settings.FrameAncestorOrigins, box)
	if err != nil {
		return nil, fmt.Errorf("failed to create options controller: %w", err)
	}
	logger.Info().Msg("Registering routes...")

	app.Get(dispatcher.OptionsPath, optionsController.ServeOptions)
	app.Get("/optionspostback", optionsController.OptionsPostback)

	app.Post("/webhook", webhookController.ReceiveEvents)
	app.Get("/webhook", webhookController.VerifySubscription)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Success")
	})

	return app, nil
}
