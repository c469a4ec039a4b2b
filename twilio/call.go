package twilio

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/nyaruka/gocommon/urns"
	"github.com/nyaruka/null/v3"
)

// Call is a single voice call resource.
type Call struct {
	SID    string
	From   urns.URN
	To     urns.URN
	URI    string
	Status null.String
}

// Dial originates an outbound call from one of the account's numbers. The API
// will fetch TwiML from CallbackURL when the call is answered, and notify
// StatusCallbackURL of state changes if it is set.
type Dial struct {
	From              urns.URN
	To                urns.URN
	CallbackURL       string
	StatusCallbackURL null.String

	// how long to let the call ring, in seconds, kept for callers but not
	// currently transmitted
	// TODO: send as the Timeout form parameter
	Timeout int
}

// NewDial creates a dial operation with the default 30 second ring timeout.
func NewDial(from, to urns.URN, callbackURL string, statusCallbackURL null.String) *Dial {
	return &Dial{From: from, To: to, CallbackURL: callbackURL, StatusCallbackURL: statusCallbackURL, Timeout: 30}
}

func (o *Dial) Request(cfg *Config) *Request {
	form := url.Values{
		"From": []string{o.From.Path()},
		"To":   []string{o.To.Path()},
		"Url":  []string{o.CallbackURL},
	}
	if o.StatusCallbackURL != "" {
		form.Set("StatusCallback", string(o.StatusCallbackURL))
	}

	return &Request{Method: http.MethodPost, URL: cfg.APIBaseURL + "/Calls", Form: form}
}

func (o *Dial) ParseResponse(root *Node) (*Call, error) { return parseCall(root) }

// GetCall fetches the current state of a single call.
type GetCall struct {
	SID string
}

func (o *GetCall) Request(cfg *Config) *Request {
	return &Request{Method: http.MethodGet, URL: cfg.APIBaseURL + "/Calls/" + o.SID}
}

func (o *GetCall) ParseResponse(root *Node) (*Call, error) { return parseCall(root) }

// HangupCall asks for an in-progress call to be ended.
type HangupCall struct {
	SID string
}

func (o *HangupCall) Request(cfg *Config) *Request {
	return &Request{
		Method: http.MethodPost,
		URL:    cfg.APIBaseURL + "/Calls/" + o.SID,
		Form:   url.Values{"Status": []string{"completed"}},
	}
}

func (o *HangupCall) ParseResponse(root *Node) (*Call, error) { return parseCall(root) }

func parseCall(root *Node) (*Call, error) {
	call := root.First("Call")
	if call == nil {
		return nil, fmt.Errorf("response has no <Call> element")
	}

	to, err := urns.ParsePhone(call.ChildText("To"), "", true, false)
	if err != nil {
		return nil, fmt.Errorf("error parsing call destination number: %w", err)
	}

	return &Call{
		SID:    call.ChildText("Sid"),
		From:   urns.URN("tel:" + call.ChildText("From")),
		To:     to,
		URI:    call.ChildText("Uri"),
		Status: call.OptionalText("Status"),
	}, nil
}
