package runtime

import (
	"log"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/ezconf"
)

var validate = validator.New()

// Config is our top level configuration object
type Config struct {
	AccountSID string `validate:"required"      help:"the Twilio account SID"`
	AuthToken  string `validate:"required"      help:"the Twilio auth token"`
	BaseURL    string `validate:"url"           help:"the root URL of the Twilio API"`

	CallerID       string `help:"the number outbound calls are placed from, in E164 format"`
	DefaultCountry string `help:"the ISO country code used when searching for available numbers"`

	Address      string `help:"the address to bind our web server to"`
	Port         int    `help:"the port to bind our web server to"`
	Domain       string `help:"the domain our webhook endpoints are reachable on"`
	WebAuthToken string `help:"the token clients will need to authenticate web requests"`

	SentryDSN string `help:"the DSN used for logging errors to Sentry"`

	LogLevel   slog.Level `help:"the logging level to use"`
	InstanceID string     `help:"the instance identifier to use in error reports"`
	Version    string     `help:"the version of this voicex install"`
}

// NewDefaultConfig returns a new default configuration object
func NewDefaultConfig() *Config {
	hostname, _ := os.Hostname()

	return &Config{
		BaseURL:        "https://api.twilio.com",
		DefaultCountry: "US",

		Address: "localhost",
		Port:    8070,
		Domain:  "localhost",

		LogLevel:   slog.LevelWarn,
		InstanceID: hostname,
		Version:    "Dev",
	}
}

func LoadConfig() *Config {
	config := NewDefaultConfig()
	loader := ezconf.NewLoader(config, "voicex", "Voicex - typed client and webhooks for the Twilio voice API", []string{"voicex.toml"})
	loader.MustLoad()

	// ensure config is valid
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	return config
}

// Validate validates the config
func (c *Config) Validate() error {
	return validate.Struct(c)
}
