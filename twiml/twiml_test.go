package twiml_test

import (
	"encoding/xml"
	"net/http/httptest"
	"testing"

	"github.com/nyaruka/voicex/twiml"
	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	tcs := []struct {
		response *twiml.Response
		expected string
	}{
		{
			response: twiml.NewResponse("missed call handled"),
			expected: `<Response><!--missed call handled--></Response>`,
		},
		{
			// comments can't contain double hyphens
			response: twiml.NewResponse("error -- see logs"),
			expected: `<Response><!--error __ see logs--></Response>`,
		},
		{
			response: twiml.NewResponse("",
				twiml.Say{Text: "Hi there", Language: "en-US"},
				twiml.Hangup{},
			),
			expected: `<Response><Say language="en-US">Hi there</Say><Hangup></Hangup></Response>`,
		},
		{
			response: twiml.NewResponse("",
				twiml.Play{URL: "https://example.com/greeting.mp3"},
				twiml.Redirect{URL: "https://example.com/next"},
			),
			expected: `<Response><Play>https://example.com/greeting.mp3</Play><Redirect>https://example.com/next</Redirect></Response>`,
		},
		{
			response: &twiml.Response{
				Gather: &twiml.Gather{
					Action:    "https://example.com/digits",
					Method:    "POST",
					NumDigits: 1,
					Timeout:   30,
					Commands:  []any{twiml.Say{Text: "press a digit"}},
				},
			},
			expected: `<Response><Gather action="https://example.com/digits" method="POST" numDigits="1" timeout="30"><Say>press a digit</Say></Gather></Response>`,
		},
		{
			response: twiml.NewResponse("",
				twiml.Dial{Action: "https://example.com/dialed", Numbers: []twiml.Number{{Number: "+12065551212"}}},
			),
			expected: `<Response><Dial action="https://example.com/dialed"><Number>+12065551212</Number></Dial></Response>`,
		},
	}

	for i, tc := range tcs {
		body, err := twiml.Marshal(tc.response)
		assert.NoError(t, err, "%d: unexpected error", i)
		assert.Equal(t, xml.Header+tc.expected, string(body), "%d: unexpected document", i)
	}
}

func TestWrite(t *testing.T) {
	w := httptest.NewRecorder()

	err := twiml.Write(w, twiml.NewResponse("status handled"))
	assert.NoError(t, err)
	assert.Equal(t, "text/xml", w.Header().Get("Content-Type"))
	assert.Equal(t, xml.Header+`<Response><!--status handled--></Response>`, w.Body.String())
}
