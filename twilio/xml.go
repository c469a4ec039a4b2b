package twilio

import (
	"encoding/xml"
	"fmt"

	"github.com/nyaruka/null/v3"
)

// Node is a single element in a parsed API response. The API's XML schema is
// shallow and element-only so we keep just names, character data and children.
type Node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []Node `xml:",any"`
}

// DecodeXML parses a response body into its root element.
func DecodeXML(body []byte) (*Node, error) {
	root := &Node{}
	if err := xml.Unmarshal(body, root); err != nil {
		return nil, fmt.Errorf("error parsing response XML: %w", err)
	}
	return root, nil
}

// First returns the first element with the given name, looking at this node
// and its descendants in document order, or nil if there is none.
func (n *Node) First(name string) *Node {
	if n.XMLName.Local == name {
		return n
	}
	for i := range n.Nodes {
		if m := n.Nodes[i].First(name); m != nil {
			return m
		}
	}
	return nil
}

// All returns every element with the given name at any depth, in document order.
func (n *Node) All(name string) []*Node {
	var all []*Node
	if n.XMLName.Local == name {
		all = append(all, n)
	}
	for i := range n.Nodes {
		all = append(all, n.Nodes[i].All(name)...)
	}
	return all
}

// ChildText returns the verbatim text of the first element with the given
// name, or the empty string if there is none. This and OptionalText are the
// only field extraction used by response parsing so that empty and missing
// values are handled the same way everywhere.
func (n *Node) ChildText(name string) string {
	if m := n.First(name); m != nil {
		return m.Text
	}
	return ""
}

// OptionalText is like ChildText but empty text and a missing element are
// both the unset value.
func (n *Node) OptionalText(name string) null.String {
	return null.String(n.ChildText(name))
}
