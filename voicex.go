package voicex

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nyaruka/voicex/runtime"
	"github.com/nyaruka/voicex/twilio"
	"github.com/nyaruka/voicex/web"
)

// Voicex is a service tying our Twilio client to our webhook endpoints
type Voicex struct {
	ctx    context.Context
	cancel context.CancelFunc

	rt        *runtime.Runtime
	webserver *web.Server
}

// NewVoicex creates and returns a new voicex instance
func NewVoicex(config *runtime.Config) *Voicex {
	vx := &Voicex{
		rt: &runtime.Runtime{Config: config},
	}
	vx.ctx, vx.cancel = context.WithCancel(context.Background())

	return vx
}

// Start starts our client and webserver
func (vx *Voicex) Start() error {
	c := vx.rt.Config

	vx.rt.HTTP = &http.Client{Timeout: 30 * time.Second}

	client, err := twilio.NewClient(vx.rt.HTTP, c.BaseURL, c.AccountSID, c.AuthToken)
	if err != nil {
		return fmt.Errorf("error creating Twilio client: %w", err)
	}
	vx.rt.Twilio = client

	vx.webserver = web.NewServer(vx.rt)
	vx.webserver.Start()

	return nil
}

// Stop stops our webserver
func (vx *Voicex) Stop() error {
	vx.webserver.Stop()
	vx.cancel()

	return nil
}
