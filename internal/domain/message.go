package domain

import "fmt"

// InboundMessage is a Slack channel message after event-level filtering.
// Transient; never persisted.
type InboundMessage struct {
	ChannelID   string
	UserID      string
	Text        string
	Timestamp   string
	ThreadTS    string
	ClientMsgID string
}

// DedupKey identifies a message for idempotent handling. Slack delivers
// events at least once, so the key prefers the client message ID and falls
// back to the message timestamp.
type DedupKey string

// DedupKey derives the idempotency key for this message.
func (m InboundMessage) DedupKey() DedupKey {
	if m.ClientMsgID != "" {
		return DedupKey(fmt.Sprintf("%s/%s", m.ChannelID, m.ClientMsgID))
	}
	return DedupKey(fmt.Sprintf("%s/%s", m.ChannelID, m.Timestamp))
}

// IsThreadReply reports whether the message was posted inside an existing
// thread. Such messages are ignored entirely to avoid interjecting into
// ongoing side-conversations.
func (m InboundMessage) IsThreadReply() bool {
	return m.ThreadTS != "" && m.ThreadTS != m.Timestamp
}

// ParentTS returns the timestamp replies should thread under.
func (m InboundMessage) ParentTS() string {
	if m.ThreadTS != "" {
		return m.ThreadTS
	}
	return m.Timestamp
}

// Valid reports whether the message carries the minimum fields the pipeline
// needs to act on it.
func (m InboundMessage) Valid() bool {
	return m.ChannelID != "" && m.UserID != "" && m.Timestamp != ""
}
