// Package model defines the data types shared across the aiwrap pipeline.
package model

import "time"

// Role identifies the speaker of a turn.
type Role string

// The only two roles that survive extraction. Anything else in a source
// export (system, tool, etc.) is skipped before records are built.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message within a conversation.
type Turn struct {
	Role      Role
	Text      string
	Timestamp time.Time // zero when the source format carries none
}

// ConversationRecord is one exported conversation, normalized from any
// of the supported export formats.
type ConversationRecord struct {
	ID        string // stable within a parse run only
	Title     string
	CreatedAt time.Time // zero for plain-text/HTML sources
	Turns     []Turn
}

// UserTurns counts the user-role turns in the record.
func (c ConversationRecord) UserTurns() int {
	n := 0
	for _, t := range c.Turns {
		if t.Role == RoleUser {
			n++
		}
	}
	return n
}

// AssistantTurns counts the assistant-role turns in the record.
func (c ConversationRecord) AssistantTurns() int {
	n := 0
	for _, t := range c.Turns {
		if t.Role == RoleAssistant {
			n++
		}
	}
	return n
}

// DefaultTitle is used for conversations the source did not name.
const DefaultTitle = "Untitled"
