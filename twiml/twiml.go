// Package twiml generates the TwiML documents our webhook endpoints return
// to the Twilio API in answer to voice callbacks.
package twiml

import (
	"encoding/xml"
	"net/http"
	"strings"
)

type Say struct {
	XMLName  string `xml:"Say"`
	Text     string `xml:",chardata"`
	Voice    string `xml:"voice,attr,omitempty"`
	Language string `xml:"language,attr,omitempty"`
}

type Play struct {
	XMLName string `xml:"Play"`
	URL     string `xml:",chardata"`
}

type Hangup struct {
	XMLName string `xml:"Hangup"`
}

type Redirect struct {
	XMLName string `xml:"Redirect"`
	URL     string `xml:",chardata"`
}

type Pause struct {
	XMLName string `xml:"Pause"`
	Length  int    `xml:"length,attr,omitempty"`
}

type Gather struct {
	XMLName     string `xml:"Gather"`
	Action      string `xml:"action,attr,omitempty"`
	Method      string `xml:"method,attr,omitempty"`
	NumDigits   int    `xml:"numDigits,attr,omitempty"`
	Timeout     int    `xml:"timeout,attr,omitempty"`
	FinishOnKey string `xml:"finishOnKey,attr,omitempty"`
	Commands    []any  `xml:",innerxml"`
}

type Record struct {
	XMLName   string `xml:"Record"`
	Action    string `xml:"action,attr,omitempty"`
	MaxLength int    `xml:"maxLength,attr,omitempty"`
	PlayBeep  bool   `xml:"playBeep,attr,omitempty"`
}

type Number struct {
	XMLName string `xml:"Number"`
	Number  string `xml:",chardata"`
}

type Dial struct {
	XMLName string   `xml:"Dial"`
	Action  string   `xml:"action,attr,omitempty"`
	Timeout int      `xml:"timeout,attr,omitempty"`
	Numbers []Number `xml:",innerxml"`
}

type Response struct {
	XMLName  string  `xml:"Response"`
	Message  string  `xml:",comment"`
	Gather   *Gather `xml:"Gather"`
	Commands []any   `xml:",innerxml"`
}

// NewResponse creates a response document with an embedded comment, useful
// for making callback replies self-describing in the API's debug logs.
func NewResponse(msg string, commands ...any) *Response {
	// double hyphens aren't valid inside XML comments
	return &Response{Message: strings.Replace(msg, "--", "__", -1), Commands: commands}
}

// Marshal renders the given response document with the standard XML header.
func Marshal(r *Response) ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Write marshals the given response document to an HTTP response.
func Write(w http.ResponseWriter, r *Response) error {
	body, err := Marshal(r)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/xml")
	_, err = w.Write(body)
	return err
}
