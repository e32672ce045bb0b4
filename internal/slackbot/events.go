package slackbot

import (
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/slack-go/slack/slackevents"
)

// droppedSubtypes are message subtypes the bot never reacts to. Edits and
// deletions would otherwise re-trigger the pipeline for old messages.
var droppedSubtypes = map[string]bool{
	"bot_message":      true,
	"message_changed":  true,
	"message_deleted":  true,
	"thread_broadcast": true,
}

// InboundFromEvent converts a Slack message event into the pipeline's
// inbound form. The second return is false for events the bot should drop:
// bot-authored messages and non-conversational subtypes.
func InboundFromEvent(ev *slackevents.MessageEvent) (domain.InboundMessage, bool) {
	if ev == nil || ev.BotID != "" || droppedSubtypes[ev.SubType] {
		return domain.InboundMessage{}, false
	}
	return domain.InboundMessage{
		ChannelID:   ev.Channel,
		UserID:      ev.User,
		Text:        ev.Text,
		Timestamp:   ev.TimeStamp,
		ThreadTS:    ev.ThreadTimeStamp,
		ClientMsgID: ev.ClientMsgID,
	}, true
}
