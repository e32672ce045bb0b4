// Package notify delivers per-inquiry DMs to the department owning a
// category.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/podolabs/frontdesk/internal/domain"
)

// Messenger sends a direct message to a Slack user.
type Messenger interface {
	PostDirectMessage(ctx context.Context, userID, text string) error
}

// Contacts resolves a category to its owning Slack user.
type Contacts interface {
	ContactFor(cat domain.Category) (string, bool)
}

// Router routes inquiry notifications to department contacts.
type Router struct {
	messenger Messenger
	contacts  Contacts
}

// NewRouter creates a Router.
func NewRouter(messenger Messenger, contacts Contacts) *Router {
	return &Router{messenger: messenger, contacts: contacts}
}

// NotifyInquiry DMs the contact owning the classified category. matched
// distinguishes a confident classification from a catch-all fallback; the
// two get different DM wording. When no contact is mapped the notification
// is dropped with a log line, never surfaced to the asking channel.
func (r *Router) NotifyInquiry(ctx context.Context, channelName string, msg domain.InboundMessage, cat domain.Category, matched bool) error {
	return r.NotifyText(ctx, cat, inquiryDM(channelName, msg, cat, matched))
}

// NotifyText DMs arbitrary text to the contact owning a category. Form
// submission summaries come through here.
func (r *Router) NotifyText(ctx context.Context, cat domain.Category, text string) error {
	userID, ok := r.contacts.ContactFor(cat)
	if !ok {
		log.Printf("notify: no contact for category %q, dropping notification", cat)
		return domain.ErrContactNotFound
	}
	if err := r.messenger.PostDirectMessage(ctx, userID, text); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "department DM delivery failed", err)
	}
	return nil
}

func inquiryDM(channelName string, msg domain.InboundMessage, cat domain.Category, matched bool) string {
	if !matched {
		return fmt.Sprintf(
			"[%s] 채널에 문의가 들어왔습니다.\n카테고리를 특정할 수 없어 '%s'로 분류되었습니다.\n사용자 ID: <@%s>\n문의 내용: %s",
			channelName, domain.CategoryCatchAll, msg.UserID, msg.Text)
	}
	return fmt.Sprintf(
		"[%s] 채널에 문의가 들어왔습니다.\n문의 내용 기반으로 <%s>카테고리로 분류되었습니다.\n사용자 ID: <@%s>\n문의 내용: %s",
		channelName, cat, msg.UserID, msg.Text)
}
