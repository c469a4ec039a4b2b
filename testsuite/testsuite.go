package testsuite

import (
	"net/http"
	"time"

	"github.com/nyaruka/gocommon/httpx"
	"github.com/nyaruka/voicex/runtime"
	"github.com/nyaruka/voicex/twilio"
	"github.com/nyaruka/voicex/web"
)

// Runtime returns a runtime for testing, with API traffic served by the given mocks
func Runtime(mocks map[string][]*httpx.MockResponse) *runtime.Runtime {
	config := runtime.NewDefaultConfig()
	config.AccountSID = "AC123"
	config.AuthToken = "sesame"
	config.WebAuthToken = "secret"
	config.CallerID = "+12065550188"
	config.Domain = "voicex.example.com"

	httpClient := &http.Client{Transport: httpx.NewMockRequestor(mocks)}
	client, _ := twilio.NewClient(httpClient, config.BaseURL, config.AccountSID, config.AuthToken)

	return &runtime.Runtime{Config: config, HTTP: httpClient, Twilio: client}
}

// StartServer starts a web server for the given runtime on the given port and
// waits for it to be listening
func StartServer(rt *runtime.Runtime, port int) *web.Server {
	rt.Config.Port = port

	server := web.NewServer(rt)
	server.Start()

	time.Sleep(100 * time.Millisecond)

	return server
}
