package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	defaultPort            = 4002
	defaultMonPort         = 8888
	defaultLogLevel        = "info"
	defaultServiceName     = "messenger-webview-api"
	defaultGraphAPIURL     = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v2.6"
	defaultPublicDir       = "public"
	defaultBuildDir        = "build"
	defaultSendWorkers     = 8
	defaultDedupeTTL       = 10 * time.Minute
)

// DefaultFrameAncestorOrigins are the chat client origins allowed to embed the options webview.
var DefaultFrameAncestorOrigins = []string{
	"https://www.messenger.com/",
	"https://www.facebook.com/",
}

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// PageAccessToken is sent as the access_token query credential on every Send API call.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// ServerURL is the public base URL of this service; the webview button points at ServerURL + "/options".
	ServerURL string `env:"SERVER_URL"`
	// AppSecret is loaded for parity with the page app configuration but is not used for routing.
	AppSecret string `env:"APP_SECRET"`
	// VerifyToken is the shared secret echoed by the platform during the webhook handshake.
	VerifyToken string `env:"TOKEN"`

	GraphAPIURL     string `env:"GRAPH_API_URL"`
	GraphAPIVersion string `env:"GRAPH_API_VERSION"`

	PublicDir            string   `env:"PUBLIC_DIR"`
	BuildDir             string   `env:"BUILD_DIR"`
	FrameAncestorOrigins []string `env:"FRAME_ANCESTOR_ORIGINS" envSeparator:","`

	SendWorkers int           `env:"SEND_WORKERS"`
	DedupeTTL   time.Duration `env:"DEDUPE_TTL"`
}

// SetDefaults fills every unset field with its default value.
func SetDefaults(settings *Settings) {
	if settings.Port == 0 {
		settings.Port = defaultPort
	}
	if settings.MonPort == 0 {
		settings.MonPort = defaultMonPort
	}
	if settings.LogLevel == "" {
		settings.LogLevel = defaultLogLevel
	}
	if settings.ServiceName == "" {
		settings.ServiceName = defaultServiceName
	}
	if settings.GraphAPIURL == "" {
		settings.GraphAPIURL = defaultGraphAPIURL
	}
	if settings.GraphAPIVersion == "" {
		settings.GraphAPIVersion = defaultGraphAPIVersion
	}
	if settings.PublicDir == "" {
		settings.PublicDir = defaultPublicDir
	}
	if settings.BuildDir == "" {
		settings.BuildDir = defaultBuildDir
	}
	if len(settings.FrameAncestorOrigins) == 0 {
		settings.FrameAncestorOrigins = append([]string(nil), DefaultFrameAncestorOrigins...)
	}
	if settings.SendWorkers < 1 {
		settings.SendWorkers = defaultSendWorkers
	}
	if settings.DedupeTTL <= 0 {
		settings.DedupeTTL = defaultDedupeTTL
	}
}

// Validate reports every required setting that is missing or unusable.
func (s *Settings) Validate() error {
	var errs []error
	if s.PageAccessToken == "" {
		errs = append(errs, errors.New("PAGE_ACCESS_TOKEN is required"))
	}
	if s.VerifyToken == "" {
		errs = append(errs, errors.New("TOKEN is required"))
	}
	if s.ServerURL == "" {
		errs = append(errs, errors.New("SERVER_URL is required"))
	} else if _, err := url.ParseRequestURI(s.ServerURL); err != nil {
		errs = append(errs, fmt.Errorf("SERVER_URL is invalid: %w", err))
	}
	for _, origin := range s.FrameAncestorOrigins {
		if u, err := url.Parse(origin); err != nil || u.Host == "" {
			errs = append(errs, fmt.Errorf("FRAME_ANCESTOR_ORIGINS entry %q is not an absolute URL", origin))
		}
	}
	return errors.Join(errs...)
}
