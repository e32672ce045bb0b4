// Package slackbot drives inbound Slack traffic through the inquiry
// pipeline: dedup, knowledge search, classification, reply composition, and
// department notification.
package slackbot

import (
	"context"
	"log"

	"github.com/podolabs/frontdesk/internal/classify"
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/podolabs/frontdesk/internal/telemetry"
	"github.com/slack-go/slack"
)

// Searcher finds knowledge entries similar to a question.
type Searcher interface {
	Search(ctx context.Context, query string, topN int, minSim float64) []domain.Match
}

// Classifier assigns a question to a department category.
type Classifier interface {
	Classify(ctx context.Context, text, channelName string) classify.Result
}

// Composer builds the grounded channel reply.
type Composer interface {
	Compose(ctx context.Context, text string, best domain.Match) string
}

// Notifier DMs the owning department about an inquiry.
type Notifier interface {
	NotifyInquiry(ctx context.Context, channelName string, msg domain.InboundMessage, cat domain.Category, matched bool) error
}

// Messenger posts into channels and resolves channel names.
type Messenger interface {
	PostMessage(ctx context.Context, channelID, text, threadTS string) error
	PostBlocks(ctx context.Context, channelID, fallbackText, threadTS string, blocks ...slack.Block) error
	ChannelName(ctx context.Context, channelID string) string
}

// Deduper suppresses redelivered events.
type Deduper interface {
	CheckAndMark(key domain.DedupKey) bool
}

// PipelineConfig carries the search tuning knobs.
type PipelineConfig struct {
	SearchTopN   int
	SearchMinSim float64
}

// Pipeline is the message handling state machine.
type Pipeline struct {
	searcher   Searcher
	classifier Classifier
	composer   Composer
	notifier   Notifier
	messenger  Messenger
	dedup      Deduper
	cfg        PipelineConfig
}

// NewPipeline creates a Pipeline.
func NewPipeline(searcher Searcher, classifier Classifier, composer Composer, notifier Notifier, messenger Messenger, dedup Deduper, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		searcher:   searcher,
		classifier: classifier,
		composer:   composer,
		notifier:   notifier,
		messenger:  messenger,
		dedup:      dedup,
		cfg:        cfg,
	}
}

// HandleMessage runs one inbound message through the pipeline. Thread
// replies, invalid messages, and redeliveries are dropped before any
// external call. Catch-all inquiries notify the fallback contact without a
// channel reply; everything else gets a grounded reply in-thread plus a
// department DM.
func (p *Pipeline) HandleMessage(ctx context.Context, msg domain.InboundMessage) {
	if !msg.Valid() || msg.Text == "" {
		return
	}
	if msg.IsThreadReply() {
		return
	}
	if !p.dedup.CheckAndMark(msg.DedupKey()) {
		return
	}

	ctx, span := telemetry.StartSpan(ctx, "Pipeline.HandleMessage", telemetry.SpanAttributes{
		Channel:   msg.ChannelID,
		UserID:    msg.UserID,
		Operation: "handle_message",
	})
	defer span.End()

	channelName := p.messenger.ChannelName(ctx, msg.ChannelID)

	searchCtx, searchSpan := telemetry.StartSpan(ctx, "Pipeline.Search", telemetry.SpanAttributes{Operation: "search"})
	matches := p.searcher.Search(searchCtx, msg.Text, p.cfg.SearchTopN, p.cfg.SearchMinSim)
	searchSpan.End()

	var result classify.Result
	if len(matches) == 0 {
		// nothing in the knowledge base resembles the question
		result = classify.Result{Category: domain.CatchAll}
	} else {
		classifyCtx, classifySpan := telemetry.StartSpan(ctx, "Pipeline.Classify", telemetry.SpanAttributes{Operation: "classify"})
		result = p.classifier.Classify(classifyCtx, msg.Text, channelName)
		classifySpan.End()
	}

	if result.Category.IsCatchAll() {
		p.notify(ctx, channelName, msg, result)
		return
	}

	composeCtx, composeSpan := telemetry.StartSpan(ctx, "Pipeline.Compose", telemetry.SpanAttributes{
		Category:  result.Category.String(),
		Operation: "compose",
	})
	reply := p.composer.Compose(composeCtx, msg.Text, matches[0])
	composeSpan.End()

	p.postReply(ctx, msg, result.Category, reply)
	p.notify(ctx, channelName, msg, result)
}

func (p *Pipeline) postReply(ctx context.Context, msg domain.InboundMessage, cat domain.Category, reply string) {
	parentTS := msg.ParentTS()

	blocks := ActionBlocks(cat, reply)
	if blocks == nil {
		if err := p.messenger.PostMessage(ctx, msg.ChannelID, reply, parentTS); err != nil {
			log.Printf("slackbot: channel reply failed: %v", err)
		}
		return
	}
	if err := p.messenger.PostBlocks(ctx, msg.ChannelID, cat.String()+" 안내", parentTS, blocks...); err != nil {
		log.Printf("slackbot: channel block reply failed: %v", err)
	}
}

func (p *Pipeline) notify(ctx context.Context, channelName string, msg domain.InboundMessage, result classify.Result) {
	ctx, span := telemetry.StartSpan(ctx, "Pipeline.Notify", telemetry.SpanAttributes{
		Category:  result.Category.String(),
		Operation: "notify",
	})
	defer span.End()

	if err := p.notifier.NotifyInquiry(ctx, channelName, msg, result.Category, result.Matched); err != nil {
		span.SetError(err)
		log.Printf("slackbot: department notification failed: %v", err)
	}
}
