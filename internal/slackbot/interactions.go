package slackbot

import (
	"context"
	"log"

	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/podolabs/frontdesk/internal/forms"
	"github.com/slack-go/slack"
)

// ModalOpener opens a modal view for a pending interaction.
type ModalOpener interface {
	OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
}

// UserNames resolves user IDs to display names.
type UserNames interface {
	UserDisplayName(ctx context.Context, userID string) string
}

// TextNotifier DMs text to the contact owning a category.
type TextNotifier interface {
	NotifyText(ctx context.Context, cat domain.Category, text string) error
}

// Interactions handles block action clicks and modal submissions.
type Interactions struct {
	opener   ModalOpener
	names    UserNames
	notifier TextNotifier
}

// NewInteractions creates an Interactions handler.
func NewInteractions(opener ModalOpener, names UserNames, notifier TextNotifier) *Interactions {
	return &Interactions{opener: opener, names: names, notifier: notifier}
}

// Handle dispatches an interaction callback by type. Unknown types are
// acknowledged without action.
func (h *Interactions) Handle(ctx context.Context, cb *slack.InteractionCallback) error {
	if cb == nil {
		return domain.ErrInvalidPayload
	}
	switch cb.Type {
	case slack.InteractionTypeBlockActions:
		return h.handleBlockActions(ctx, cb)
	case slack.InteractionTypeViewSubmission:
		return h.handleViewSubmission(ctx, cb)
	default:
		return nil
	}
}

func (h *Interactions) handleBlockActions(ctx context.Context, cb *slack.InteractionCallback) error {
	if len(cb.ActionCallback.BlockActions) == 0 {
		return domain.ErrInvalidPayload
	}
	actionID := cb.ActionCallback.BlockActions[0].ActionID

	form, ok := forms.ByActionID(actionID)
	if !ok {
		// a stale button from a retired form; ack and move on
		log.Printf("slackbot: unknown action id %q", actionID)
		return nil
	}
	return h.opener.OpenModal(ctx, cb.TriggerID, form.ModalView())
}

func (h *Interactions) handleViewSubmission(ctx context.Context, cb *slack.InteractionCallback) error {
	form, ok := forms.ByCallbackID(cb.View.CallbackID)
	if !ok {
		return domain.ErrFormNotFound
	}

	name := h.names.UserDisplayName(ctx, cb.User.ID)
	summary := form.Summary(name, cb.View.State)
	return h.notifier.NotifyText(ctx, form.Category, summary)
}
