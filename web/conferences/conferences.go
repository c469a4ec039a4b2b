package conferences

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nyaruka/voicex/runtime"
	"github.com/nyaruka/voicex/twilio"
	"github.com/nyaruka/voicex/web"
)

func init() {
	web.RegisterRoute(http.MethodGet, "/conference/{sid}", web.RequireAuthToken(web.MarshaledResponse(handleGet)))
	web.RegisterRoute(http.MethodPost, "/conference/{sid}/mute", web.RequireAuthToken(web.MarshaledResponse(handleMute)))
}

type participantResponse struct {
	CallSID string `json:"call_sid"`
	Muted   bool   `json:"muted"`
}

// fetches a conference and then each of its participants
func handleGet(ctx context.Context, rt *runtime.Runtime, r *http.Request) (any, int, error) {
	sid := r.PathValue("sid")

	conf, _, err := twilio.Execute(rt.Twilio, &twilio.GetConference{SID: sid})
	if err != nil {
		return nil, 0, fmt.Errorf("error fetching conference %s: %w", sid, err)
	}

	participants := make([]*participantResponse, len(conf.ParticipantURIs))
	for i, uri := range conf.ParticipantURIs {
		p, _, err := twilio.Execute(rt.Twilio, &twilio.GetParticipant{URI: uri})
		if err != nil {
			return nil, 0, fmt.Errorf("error fetching conference participant %s: %w", uri, err)
		}
		participants[i] = &participantResponse{CallSID: p.CallSID, Muted: p.Muted}
	}

	return map[string]any{"status": conf.Status, "participants": participants}, http.StatusOK, nil
}

// Mutes or unmutes a single participant in the conference.
//
//	{
//	  "call_sid": "CA0123456789",
//	  "muted": true
//	}
type muteRequest struct {
	CallSID string `json:"call_sid" validate:"required"`
	Muted   bool   `json:"muted"`
}

func handleMute(ctx context.Context, rt *runtime.Runtime, r *http.Request) (any, int, error) {
	payload := &muteRequest{}
	if err := web.ReadAndValidateJSON(r, payload); err != nil {
		return fmt.Errorf("request failed validation: %w", err), http.StatusBadRequest, nil
	}

	op := &twilio.SetParticipantMuted{ConferenceSID: r.PathValue("sid"), CallSID: payload.CallSID, Muted: payload.Muted}

	p, _, err := twilio.Execute(rt.Twilio, op)
	if err != nil {
		return nil, 0, fmt.Errorf("error muting conference participant %s: %w", payload.CallSID, err)
	}

	return &participantResponse{CallSID: p.CallSID, Muted: p.Muted}, http.StatusOK, nil
}
