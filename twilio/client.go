package twilio

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nyaruka/gocommon/httpx"
)

// Client executes operations against the API for a single account.
type Client struct {
	httpClient *http.Client
	cfg        *Config
	accountSID string
	authToken  string
}

// NewClient creates a new client for the passed in account SID and auth token.
func NewClient(httpClient *http.Client, baseURL, accountSID, authToken string) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("missing account SID or auth token")
	}
	if baseURL == "" {
		baseURL = BaseURL
	}

	return &Client{
		httpClient: httpClient,
		cfg:        NewConfig(baseURL, accountSID),
		accountSID: accountSID,
		authToken:  authToken,
	}, nil
}

// Config returns the endpoint configuration this client was created with.
func (c *Client) Config() *Config { return c.cfg }

// RedactValues returns the values that shouldn't appear in logs of this client's traffic.
func (c *Client) RedactValues() []string {
	return []string{httpx.BasicAuth(c.accountSID, c.authToken), c.authToken}
}

func (c *Client) do(r *Request) (*httpx.Trace, error) {
	var body io.Reader
	if len(r.Form) > 0 {
		body = strings.NewReader(r.Form.Encode())
	}

	req, err := http.NewRequest(r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Accept", "application/xml")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return httpx.DoTrace(c.httpClient, req, nil, nil, -1)
}

// Execute builds the request for the given operation, makes it, and parses
// the XML response body into the operation's result type.
func Execute[R any](c *Client, op Operation[R]) (R, *httpx.Trace, error) {
	var zero R

	trace, err := c.do(op.Request(c.cfg))
	if err != nil {
		return zero, trace, fmt.Errorf("error making request to Twilio: %w", err)
	}

	if trace.Response.StatusCode/100 != 2 {
		return zero, trace, fmt.Errorf("received non 2XX status from Twilio: %d", trace.Response.StatusCode)
	}

	root, err := DecodeXML(trace.ResponseBody)
	if err != nil {
		return zero, trace, err
	}

	res, err := op.ParseResponse(root)
	if err != nil {
		return zero, trace, err
	}
	return res, trace, nil
}
