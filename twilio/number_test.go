package twilio_test

import (
	"net/http"
	"testing"

	"github.com/nyaruka/gocommon/urns"
	"github.com/nyaruka/voicex/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableNumbers(t *testing.T) {
	op := &twilio.AvailableNumbers{Country: "US"}

	req := op.Request(twilio.NewConfig("https://api.twilio.com", "AC123"))
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://api.twilio.com/2010-04-01/Accounts/AC123/AvailablePhoneNumbers/US/Local", req.URL)
	assert.Nil(t, req.Form)

	root, err := twilio.DecodeXML([]byte(`<TwilioResponse>
		<AvailablePhoneNumbers>
			<AvailablePhoneNumber><FriendlyName>(206) 555-0188</FriendlyName><PhoneNumber>+12065550188</PhoneNumber></AvailablePhoneNumber>
			<AvailablePhoneNumber><PhoneNumber>+12065550199</PhoneNumber></AvailablePhoneNumber>
		</AvailablePhoneNumbers>
	</TwilioResponse>`))
	require.NoError(t, err)

	numbers, err := op.ParseResponse(root)
	assert.NoError(t, err)
	assert.Equal(t, []urns.URN{"tel:+12065550188", "tel:+12065550199"}, numbers)

	// no numbers available is a valid empty result, not an error
	root, err = twilio.DecodeXML([]byte(`<TwilioResponse><AvailablePhoneNumbers></AvailablePhoneNumbers></TwilioResponse>`))
	require.NoError(t, err)

	numbers, err = op.ParseResponse(root)
	assert.NoError(t, err)
	assert.Len(t, numbers, 0)
}
