package calls

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/nyaruka/gocommon/i18n"
	"github.com/nyaruka/gocommon/urns"
	"github.com/nyaruka/null/v3"
	"github.com/nyaruka/voicex/runtime"
	"github.com/nyaruka/voicex/twilio"
	"github.com/nyaruka/voicex/twiml"
	"github.com/nyaruka/voicex/web"
)

func init() {
	web.RegisterRoute(http.MethodPost, "/call", web.RequireAuthToken(web.JSONPayload(handleDial)))
	web.RegisterRoute(http.MethodPost, "/call/{sid}/hangup", web.RequireAuthToken(web.MarshaledResponse(handleHangup)))
	web.RegisterRoute(http.MethodPost, "/twiml/voice", handleVoice)
	web.RegisterRoute(http.MethodPost, "/twiml/status", handleStatus)
}

// Originates an outbound call which will speak the given message when it is
// answered.
//
//	{
//	  "to": "+12065551212",
//	  "message": "your appointment is tomorrow"
//	}
type dialRequest struct {
	To      string `json:"to"      validate:"required"`
	Message string `json:"message"`
}

type callResponse struct {
	SID    string      `json:"sid"`
	To     string      `json:"to"`
	Status null.String `json:"status,omitempty"`
}

func handleDial(ctx context.Context, rt *runtime.Runtime, payload *dialRequest) (any, int, error) {
	to, err := urns.ParsePhone(payload.To, i18n.Country(rt.Config.DefaultCountry), true, false)
	if err != nil {
		return fmt.Errorf("invalid destination number: %w", err), http.StatusUnprocessableEntity, nil
	}

	from := urns.URN("tel:" + rt.Config.CallerID)

	voiceURL := fmt.Sprintf("https://%s/twiml/voice", rt.Config.Domain)
	if payload.Message != "" {
		voiceURL += "?message=" + url.QueryEscape(payload.Message)
	}
	statusURL := null.String(fmt.Sprintf("https://%s/twiml/status", rt.Config.Domain))

	call, _, err := twilio.Execute(rt.Twilio, twilio.NewDial(from, to, voiceURL, statusURL))
	if err != nil {
		return nil, 0, fmt.Errorf("error requesting call: %w", err)
	}

	slog.Info("call requested", "call_sid", call.SID, "to", call.To.Path())

	return &callResponse{SID: call.SID, To: call.To.Path(), Status: call.Status}, http.StatusOK, nil
}

func handleHangup(ctx context.Context, rt *runtime.Runtime, r *http.Request) (any, int, error) {
	call, _, err := twilio.Execute(rt.Twilio, &twilio.HangupCall{SID: r.PathValue("sid")})
	if err != nil {
		return nil, 0, fmt.Errorf("error trying to hangup call: %w", err)
	}

	return &callResponse{SID: call.SID, To: call.To.Path(), Status: call.Status}, http.StatusOK, nil
}

// answers a voice callback with the message the call was created with
func handleVoice(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error {
	message := r.URL.Query().Get("message")
	if message == "" {
		message = "This is a call from voicex."
	}

	slog.Info("answering call", "call_sid", r.FormValue("CallSid"))

	return twiml.Write(w, twiml.NewResponse("", twiml.Say{Text: message, Language: "en-US"}, twiml.Hangup{}))
}

// handles status callbacks, which just get logged
func handleStatus(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error {
	slog.Info("call status changed", "call_sid", r.FormValue("CallSid"), "status", r.FormValue("CallStatus"), "duration", r.FormValue("CallDuration"))

	return twiml.Write(w, twiml.NewResponse("status handled"))
}
