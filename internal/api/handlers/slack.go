// Package handlers contains the HTTP handlers for the Slack callback
// endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/podolabs/frontdesk/internal/api"
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/podolabs/frontdesk/internal/slackbot"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// MessageHandler consumes inbound messages.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage)
}

// InteractionHandler consumes interaction callbacks.
type InteractionHandler interface {
	Handle(ctx context.Context, cb *slack.InteractionCallback) error
}

// EventsHandler serves the Events API endpoint.
type EventsHandler struct {
	messages MessageHandler
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(messages MessageHandler) *EventsHandler {
	return &EventsHandler{messages: messages}
}

// Handle acknowledges the event immediately and runs the pipeline in the
// background; Slack retries any callback not answered within 3 seconds.
// Signature verification happens in middleware before this runs, so the
// legacy verification token is not checked again.
func (h *EventsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "failed to read request body", err))
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "failed to parse event payload", err))
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "failed to parse challenge", err))
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if messageEvent, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			if msg, ok := slackbot.InboundFromEvent(messageEvent); ok {
				go h.messages.HandleMessage(context.WithoutCancel(r.Context()), msg)
			}
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

// ActionsHandler serves the interactivity endpoint.
type ActionsHandler struct {
	interactions InteractionHandler
}

// NewActionsHandler creates an ActionsHandler.
func NewActionsHandler(interactions InteractionHandler) *ActionsHandler {
	return &ActionsHandler{interactions: interactions}
}

// Handle decodes the form-encoded interaction payload. View submissions are
// processed synchronously so the modal can be closed in the response; button
// clicks are acknowledged immediately and processed in the background.
func (h *ActionsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload := r.FormValue("payload")
	if payload == "" {
		api.HandleError(w, domain.ErrInvalidPayload)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "failed to parse interaction payload", err))
		return
	}

	if callback.Type == slack.InteractionTypeViewSubmission {
		if err := h.interactions.Handle(r.Context(), &callback); err != nil {
			log.Printf("handlers: view submission failed: %v", err)
		}
		api.JSON(w, http.StatusOK, map[string]string{"response_action": "clear"})
		return
	}

	go func() {
		if err := h.interactions.Handle(context.WithoutCancel(r.Context()), &callback); err != nil {
			log.Printf("handlers: interaction failed: %v", err)
		}
	}()
	w.WriteHeader(http.StatusOK)
}
