package twilio

import (
	"net/http"

	"github.com/nyaruka/gocommon/i18n"
	"github.com/nyaruka/gocommon/urns"
)

// AvailableNumbers is a search for local numbers available for purchase in a
// country.
type AvailableNumbers struct {
	Country i18n.Country
}

func (o *AvailableNumbers) Request(cfg *Config) *Request {
	return &Request{Method: http.MethodGet, URL: cfg.APIBaseURL + "/AvailablePhoneNumbers/" + string(o.Country) + "/Local"}
}

// ParseResponse returns one URN per number in the response, in document
// order. An empty result just means nothing is available there.
func (o *AvailableNumbers) ParseResponse(root *Node) ([]urns.URN, error) {
	var numbers []urns.URN
	for _, avail := range root.All("AvailablePhoneNumber") {
		numbers = append(numbers, urns.URN("tel:"+avail.ChildText("PhoneNumber")))
	}
	return numbers, nil
}
