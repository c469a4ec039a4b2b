package twilio

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Conference is the state of a conference and the resource URIs of its
// participants.
type Conference struct {
	Status          string
	ParticipantURIs []string
}

// Participant is a single leg of a conference.
type Participant struct {
	CallSID string
	Muted   bool
}

// GetConference fetches a conference's status and its participant resource
// URIs.
type GetConference struct {
	SID string
}

func (o *GetConference) Request(cfg *Config) *Request {
	return &Request{Method: http.MethodGet, URL: cfg.APIBaseURL + "/Conferences/" + o.SID}
}

func (o *GetConference) ParseResponse(root *Node) (*Conference, error) {
	conf := root.First("Conference")
	if conf == nil {
		return nil, fmt.Errorf("response has no <Conference> element")
	}

	c := &Conference{Status: conf.ChildText("Status")}
	if sub := conf.First("SubresourceUris"); sub != nil {
		for _, p := range sub.All("Participants") {
			c.ParticipantURIs = append(c.ParticipantURIs, p.Text)
		}
	}
	return c, nil
}

// GetParticipant fetches one conference participant by the resource URI
// returned on the conference. Those URIs are relative to the site root rather
// than the account API root.
type GetParticipant struct {
	URI string
}

func (o *GetParticipant) Request(cfg *Config) *Request {
	return &Request{Method: http.MethodGet, URL: cfg.SiteBaseURL + o.URI}
}

func (o *GetParticipant) ParseResponse(root *Node) (*Participant, error) {
	return parseParticipant(root)
}

// SetParticipantMuted mutes or unmutes a single conference participant.
type SetParticipantMuted struct {
	ConferenceSID string
	CallSID       string
	Muted         bool
}

func (o *SetParticipantMuted) Request(cfg *Config) *Request {
	return &Request{
		Method: http.MethodPost,
		URL:    cfg.APIBaseURL + "/Conferences/" + o.ConferenceSID + "/Participants/" + o.CallSID,
		Form:   url.Values{"Muted": []string{strconv.FormatBool(o.Muted)}},
	}
}

func (o *SetParticipantMuted) ParseResponse(root *Node) (*Participant, error) {
	return parseParticipant(root)
}

func parseParticipant(root *Node) (*Participant, error) {
	p := root.First("Participant")
	if p == nil {
		return nil, fmt.Errorf("response has no <Participant> element")
	}

	// only the exact value "true" counts as muted
	return &Participant{
		CallSID: p.ChildText("CallSid"),
		Muted:   p.ChildText("Muted") == "true",
	}, nil
}
