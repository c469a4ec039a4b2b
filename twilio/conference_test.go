package twilio_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/nyaruka/voicex/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConference(t *testing.T) {
	op := &twilio.GetConference{SID: "CF123"}

	req := op.Request(twilio.NewConfig("https://api.twilio.com", "AC123"))
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://api.twilio.com/2010-04-01/Accounts/AC123/Conferences/CF123", req.URL)

	root, err := twilio.DecodeXML([]byte(`<TwilioResponse>
		<Conference>
			<Sid>CF123</Sid>
			<Status>in-progress</Status>
			<SubresourceUris>
				<Participants>/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA1</Participants>
				<Participants>/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA2</Participants>
			</SubresourceUris>
		</Conference>
	</TwilioResponse>`))
	require.NoError(t, err)

	conf, err := op.ParseResponse(root)
	assert.NoError(t, err)
	assert.Equal(t, "in-progress", conf.Status)
	assert.Equal(t, []string{
		"/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA1",
		"/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA2",
	}, conf.ParticipantURIs)

	root, err = twilio.DecodeXML([]byte(`<TwilioResponse><Conference><Status>completed</Status></Conference></TwilioResponse>`))
	require.NoError(t, err)

	conf, err = op.ParseResponse(root)
	assert.NoError(t, err)
	assert.Equal(t, "completed", conf.Status)
	assert.Len(t, conf.ParticipantURIs, 0)

	root, err = twilio.DecodeXML([]byte(`<TwilioResponse></TwilioResponse>`))
	require.NoError(t, err)

	_, err = op.ParseResponse(root)
	assert.EqualError(t, err, "response has no <Conference> element")
}

func TestGetParticipant(t *testing.T) {
	op := &twilio.GetParticipant{URI: "/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA1"}

	// participant URIs are resolved against the site root, not the account API root
	req := op.Request(twilio.NewConfig("https://api.twilio.com", "AC123"))
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://api.twilio.com/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA1", req.URL)

	tcs := []struct {
		body     string
		expected *twilio.Participant
	}{
		{
			body:     `<Participant><CallSid>CA1</CallSid><Muted>true</Muted></Participant>`,
			expected: &twilio.Participant{CallSID: "CA1", Muted: true},
		},
		{
			body:     `<Participant><CallSid>CA1</CallSid><Muted>false</Muted></Participant>`,
			expected: &twilio.Participant{CallSID: "CA1", Muted: false},
		},
		{
			// anything other than the exact value "true" means not muted
			body:     `<Participant><CallSid>CA1</CallSid><Muted>True</Muted></Participant>`,
			expected: &twilio.Participant{CallSID: "CA1", Muted: false},
		},
		{
			body:     `<Participant><CallSid>CA1</CallSid></Participant>`,
			expected: &twilio.Participant{CallSID: "CA1", Muted: false},
		},
	}

	for _, tc := range tcs {
		root, err := twilio.DecodeXML([]byte(tc.body))
		require.NoError(t, err)

		p, err := op.ParseResponse(root)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, p, "unexpected participant for %s", tc.body)
	}

	root, err := twilio.DecodeXML([]byte(`<TwilioResponse></TwilioResponse>`))
	require.NoError(t, err)

	_, err = op.ParseResponse(root)
	assert.EqualError(t, err, "response has no <Participant> element")
}

func TestSetParticipantMuted(t *testing.T) {
	op := &twilio.SetParticipantMuted{ConferenceSID: "CF123", CallSID: "CA1", Muted: true}

	req := op.Request(twilio.NewConfig("https://api.twilio.com", "AC123"))
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.twilio.com/2010-04-01/Accounts/AC123/Conferences/CF123/Participants/CA1", req.URL)
	assert.Equal(t, url.Values{"Muted": []string{"true"}}, req.Form)
}
