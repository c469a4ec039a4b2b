package runtime

import (
	"net/http"

	"github.com/nyaruka/voicex/twilio"
)

// Runtime represents the set of shared services used across handlers. Used as
// a wrapper to simplify call signatures without creating a direct dependency
// on the server itself.
type Runtime struct {
	Config *Config
	HTTP   *http.Client
	Twilio *twilio.Client
}
