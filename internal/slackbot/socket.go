package slackbot

import (
	"context"
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// SocketRunner consumes Slack Socket Mode traffic and feeds it to the
// pipeline and interaction handlers. It is the deployment mode for
// workspaces that cannot expose a public HTTP endpoint.
type SocketRunner struct {
	client       *socketmode.Client
	pipeline     *Pipeline
	interactions *Interactions
}

// NewSocketRunner creates a SocketRunner.
func NewSocketRunner(client *socketmode.Client, pipeline *Pipeline, interactions *Interactions) *SocketRunner {
	return &SocketRunner{client: client, pipeline: pipeline, interactions: interactions}
}

// Run starts the event loop and blocks until the context is canceled or the
// connection fails permanently.
func (r *SocketRunner) Run(ctx context.Context) error {
	go r.consume(ctx)
	return r.client.RunContext(ctx)
}

func (r *SocketRunner) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-r.client.Events:
			if !ok {
				return
			}
			r.handle(ctx, evt)
		}
	}
}

func (r *SocketRunner) handle(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Println("slackbot: connecting to socket mode")

	case socketmode.EventTypeConnected:
		log.Println("slackbot: connected to socket mode")

	case socketmode.EventTypeConnectionError:
		log.Printf("slackbot: socket mode connection error: %v", evt.Data)

	case socketmode.EventTypeEventsAPI:
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		// ack before processing; Slack redelivers after 3 seconds
		r.client.Ack(*evt.Request)
		r.handleEventsAPI(ctx, apiEvent)

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			return
		}
		if callback.Type == slack.InteractionTypeViewSubmission {
			r.client.Ack(*evt.Request, map[string]interface{}{"response_action": "clear"})
		} else {
			r.client.Ack(*evt.Request)
		}
		go func() {
			if err := r.interactions.Handle(ctx, &callback); err != nil {
				log.Printf("slackbot: interaction handling failed: %v", err)
			}
		}()
	}
}

func (r *SocketRunner) handleEventsAPI(ctx context.Context, apiEvent slackevents.EventsAPIEvent) {
	if apiEvent.Type != slackevents.CallbackEvent {
		return
	}
	messageEvent, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}
	msg, ok := InboundFromEvent(messageEvent)
	if !ok {
		return
	}
	go r.pipeline.HandleMessage(ctx, msg)
}
