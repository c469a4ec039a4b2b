package twilio

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/nyaruka/null/v3"
)

// NumberConfig is the webhook configuration of an incoming number. All fields
// are optional: an unset field means "leave unchanged" when written and "not
// set" when read.
type NumberConfig struct {
	FriendlyName      null.String
	VoiceURL          null.String
	VoiceFallbackURL  null.String
	StatusCallbackURL null.String
	SMSURL            null.String
	SMSFallbackURL    null.String
}

// IncomingNumber is a phone number owned by the account.
type IncomingNumber struct {
	SID    string
	Config NumberConfig
}

// UpdateNumber rewrites the webhook configuration of an incoming number. All
// webhook methods are forced to POST, and unset config fields are omitted
// from the request entirely so the API leaves them unchanged.
type UpdateNumber struct {
	SID    string
	Config NumberConfig
}

func (o *UpdateNumber) Request(cfg *Config) *Request {
	form := url.Values{
		"ApiVersion":           []string{APIVersion},
		"VoiceMethod":          []string{"POST"},
		"VoiceFallbackMethod":  []string{"POST"},
		"StatusCallbackMethod": []string{"POST"},
		"SmsMethod":            []string{"POST"},
		"SmsFallbackMethod":    []string{"POST"},
	}

	setIfPresent := func(key string, v null.String) {
		if v != "" {
			form.Set(key, string(v))
		}
	}
	setIfPresent("FriendlyName", o.Config.FriendlyName)
	setIfPresent("VoiceUrl", o.Config.VoiceURL)
	setIfPresent("VoiceFallbackUrl", o.Config.VoiceFallbackURL)
	setIfPresent("StatusCallbackUrl", o.Config.StatusCallbackURL)
	setIfPresent("SmsUrl", o.Config.SMSURL)
	setIfPresent("SmsFallbackUrl", o.Config.SMSFallbackURL)

	return &Request{Method: http.MethodPost, URL: cfg.APIBaseURL + "/IncomingPhoneNumbers/" + o.SID, Form: form}
}

func (o *UpdateNumber) ParseResponse(root *Node) (*IncomingNumber, error) {
	num := root.First("IncomingPhoneNumber")
	if num == nil {
		return nil, fmt.Errorf("response has no <IncomingPhoneNumber> element")
	}
	return parseIncomingNumber(num), nil
}

// ListNumbers fetches all the incoming numbers on the account.
type ListNumbers struct{}

func (o *ListNumbers) Request(cfg *Config) *Request {
	return &Request{Method: http.MethodGet, URL: cfg.APIBaseURL + "/IncomingPhoneNumbers"}
}

func (o *ListNumbers) ParseResponse(root *Node) ([]*IncomingNumber, error) {
	var nums []*IncomingNumber
	for _, n := range root.All("IncomingPhoneNumber") {
		nums = append(nums, parseIncomingNumber(n))
	}
	return nums, nil
}

func parseIncomingNumber(n *Node) *IncomingNumber {
	return &IncomingNumber{
		SID: n.ChildText("Sid"),
		Config: NumberConfig{
			FriendlyName:      n.OptionalText("FriendlyName"),
			VoiceURL:          n.OptionalText("VoiceUrl"),
			VoiceFallbackURL:  n.OptionalText("VoiceFallbackUrl"),
			StatusCallbackURL: n.OptionalText("StatusCallbackUrl"),
			SMSURL:            n.OptionalText("SmsUrl"),
			SMSFallbackURL:    n.OptionalText("SmsFallbackUrl"),
		},
	}
}
