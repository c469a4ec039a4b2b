package twilio

import "net/url"

// APIVersion is the version of the Twilio API this client speaks.
const APIVersion = "2010-04-01"

// BaseURL is our default root URL for the Twilio API (public for testing overriding)
var BaseURL = `https://api.twilio.com`

// Config is the read-only endpoint configuration passed to every request
// builder. Requests for account resources are built on APIBaseURL, requests
// for resource URIs returned by the API itself on SiteBaseURL.
type Config struct {
	APIBaseURL  string
	SiteBaseURL string
}

// NewConfig returns the endpoint configuration for the given account.
func NewConfig(baseURL, accountSID string) *Config {
	return &Config{
		APIBaseURL:  baseURL + "/" + APIVersion + "/Accounts/" + accountSID,
		SiteBaseURL: baseURL,
	}
}

// Request is a description of a single HTTP call to be made against the API.
// GET requests carry no form.
type Request struct {
	Method string
	URL    string
	Form   url.Values
}

// Operation is a single API action: it knows how to build its request from
// the endpoint configuration and how to parse the XML response into its
// result type. Operations are immutable values, built per call and used once,
// and both sides are pure functions so distinct operations can be executed
// concurrently without locking.
type Operation[R any] interface {
	Request(cfg *Config) *Request
	ParseResponse(root *Node) (R, error)
}
