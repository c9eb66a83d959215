package export

import "encoding/json"

// rawConversation mirrors one conversation object in a ChatGPT-style
// JSON export.
type rawConversation struct {
	Title      string             `json:"title"`
	CreateTime float64            `json:"create_time,omitempty"` // epoch seconds, may be fractional
	Mapping    map[string]rawNode `json:"mapping,omitempty"`
}

// rawNode is one entry in the message graph. Nodes without a message
// (roots, tombstones) are skipped.
type rawNode struct {
	Message *rawMessage `json:"message,omitempty"`
}

// rawMessage is the message envelope inside a mapping node.
type rawMessage struct {
	Author     rawAuthor  `json:"author"`
	Content    rawContent `json:"content"`
	CreateTime float64    `json:"create_time,omitempty"`
}

type rawAuthor struct {
	Role string `json:"role"`
}

// rawContent holds the message parts. Parts are usually strings, but
// multimodal exports put objects here; non-string parts are ignored.
type rawContent struct {
	Parts []json.RawMessage `json:"parts"`
}

// Text joins the string parts into the message body.
func (c rawContent) Text() string {
	var out string
	for _, p := range c.Parts {
		var s string
		if err := json.Unmarshal(p, &s); err == nil {
			out += s
		}
	}
	return out
}
