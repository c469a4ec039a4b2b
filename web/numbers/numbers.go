package numbers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nyaruka/gocommon/i18n"
	"github.com/nyaruka/null/v3"
	"github.com/nyaruka/voicex/runtime"
	"github.com/nyaruka/voicex/twilio"
	"github.com/nyaruka/voicex/web"
)

func init() {
	web.RegisterRoute(http.MethodGet, "/number", web.RequireAuthToken(web.MarshaledResponse(handleList)))
	web.RegisterRoute(http.MethodGet, "/number/available", web.RequireAuthToken(web.MarshaledResponse(handleAvailable)))
	web.RegisterRoute(http.MethodPost, "/number", web.RequireAuthToken(web.JSONPayload(handleUpdate)))
}

type numberResponse struct {
	SID               string      `json:"sid"`
	FriendlyName      null.String `json:"friendly_name,omitempty"`
	VoiceURL          null.String `json:"voice_url,omitempty"`
	VoiceFallbackURL  null.String `json:"voice_fallback_url,omitempty"`
	StatusCallbackURL null.String `json:"status_callback_url,omitempty"`
	SMSURL            null.String `json:"sms_url,omitempty"`
	SMSFallbackURL    null.String `json:"sms_fallback_url,omitempty"`
}

func newNumberResponse(n *twilio.IncomingNumber) *numberResponse {
	return &numberResponse{
		SID:               n.SID,
		FriendlyName:      n.Config.FriendlyName,
		VoiceURL:          n.Config.VoiceURL,
		VoiceFallbackURL:  n.Config.VoiceFallbackURL,
		StatusCallbackURL: n.Config.StatusCallbackURL,
		SMSURL:            n.Config.SMSURL,
		SMSFallbackURL:    n.Config.SMSFallbackURL,
	}
}

func handleList(ctx context.Context, rt *runtime.Runtime, r *http.Request) (any, int, error) {
	nums, _, err := twilio.Execute(rt.Twilio, &twilio.ListNumbers{})
	if err != nil {
		return nil, 0, fmt.Errorf("error listing numbers: %w", err)
	}

	resp := make([]*numberResponse, len(nums))
	for i, n := range nums {
		resp[i] = newNumberResponse(n)
	}
	return map[string]any{"numbers": resp}, http.StatusOK, nil
}

func handleAvailable(ctx context.Context, rt *runtime.Runtime, r *http.Request) (any, int, error) {
	country := i18n.Country(r.URL.Query().Get("country"))
	if country == "" {
		country = i18n.Country(rt.Config.DefaultCountry)
	}

	found, _, err := twilio.Execute(rt.Twilio, &twilio.AvailableNumbers{Country: country})
	if err != nil {
		return nil, 0, fmt.Errorf("error searching for available numbers: %w", err)
	}

	numbers := make([]string, len(found))
	for i, urn := range found {
		numbers[i] = urn.Path()
	}
	return map[string]any{"country": country, "numbers": numbers}, http.StatusOK, nil
}

// Updates the webhook configuration of one of the account's numbers. Omitted
// fields are left unchanged.
//
//	{
//	  "sid": "PN0123456789",
//	  "voice_url": "https://example.com/twiml/voice"
//	}
type updateRequest struct {
	SID               string      `json:"sid" validate:"required"`
	FriendlyName      null.String `json:"friendly_name"`
	VoiceURL          null.String `json:"voice_url"`
	VoiceFallbackURL  null.String `json:"voice_fallback_url"`
	StatusCallbackURL null.String `json:"status_callback_url"`
	SMSURL            null.String `json:"sms_url"`
	SMSFallbackURL    null.String `json:"sms_fallback_url"`
}

func handleUpdate(ctx context.Context, rt *runtime.Runtime, payload *updateRequest) (any, int, error) {
	op := &twilio.UpdateNumber{SID: payload.SID, Config: twilio.NumberConfig{
		FriendlyName:      payload.FriendlyName,
		VoiceURL:          payload.VoiceURL,
		VoiceFallbackURL:  payload.VoiceFallbackURL,
		StatusCallbackURL: payload.StatusCallbackURL,
		SMSURL:            payload.SMSURL,
		SMSFallbackURL:    payload.SMSFallbackURL,
	}}

	num, _, err := twilio.Execute(rt.Twilio, op)
	if err != nil {
		return nil, 0, fmt.Errorf("error updating number %s: %w", payload.SID, err)
	}

	return newNumberResponse(num), http.StatusOK, nil
}
