package slackbot

import (
	"context"
	"testing"

	"github.com/podolabs/frontdesk/internal/classify"
	"github.com/podolabs/frontdesk/internal/dedup"
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, topN int, minSim float64) []domain.Match {
	args := m.Called(ctx, query, topN, minSim)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Match)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text, channelName string) classify.Result {
	args := m.Called(ctx, text, channelName)
	return args.Get(0).(classify.Result)
}

type MockComposer struct {
	mock.Mock
}

func (m *MockComposer) Compose(ctx context.Context, text string, best domain.Match) string {
	args := m.Called(ctx, text, best)
	return args.String(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyInquiry(ctx context.Context, channelName string, msg domain.InboundMessage, cat domain.Category, matched bool) error {
	args := m.Called(ctx, channelName, msg, cat, matched)
	return args.Error(0)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) PostMessage(ctx context.Context, channelID, text, threadTS string) error {
	args := m.Called(ctx, channelID, text, threadTS)
	return args.Error(0)
}

func (m *MockMessenger) PostBlocks(ctx context.Context, channelID, fallbackText, threadTS string, blocks ...slack.Block) error {
	args := m.Called(ctx, channelID, fallbackText, threadTS, blocks)
	return args.Error(0)
}

func (m *MockMessenger) ChannelName(ctx context.Context, channelID string) string {
	args := m.Called(ctx, channelID)
	return args.String(0)
}

type pipelineFixture struct {
	searcher   *MockSearcher
	classifier *MockClassifier
	composer   *MockComposer
	notifier   *MockNotifier
	messenger  *MockMessenger
	pipeline   *Pipeline
}

func newPipelineFixture() *pipelineFixture {
	f := &pipelineFixture{
		searcher:   new(MockSearcher),
		classifier: new(MockClassifier),
		composer:   new(MockComposer),
		notifier:   new(MockNotifier),
		messenger:  new(MockMessenger),
	}
	f.pipeline = NewPipeline(f.searcher, f.classifier, f.composer, f.notifier, f.messenger, dedup.NewGuard(),
		PipelineConfig{SearchTopN: 3, SearchMinSim: 0.82})
	return f
}

func inbound() domain.InboundMessage {
	return domain.InboundMessage{
		ChannelID:   "C123",
		UserID:      "U777",
		Text:        "와이파이가 너무 느려요",
		Timestamp:   "1700000000.000100",
		ClientMsgID: "msg-1",
	}
}

func TestPipeline_FullPath(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	match := domain.Match{Question: "와이파이 느림", Answer: "공유기를 재시작하세요", Score: 0.91}

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("helpdesk-mapo")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return([]domain.Match{match})
	f.classifier.On("Classify", mock.Anything, msg.Text, "helpdesk-mapo").
		Return(classify.Result{Category: domain.ParseCategory("네트워크"), Score: 0.9, Matched: true})
	f.composer.On("Compose", mock.Anything, msg.Text, match).Return("생성된 답변")
	f.messenger.On("PostBlocks", mock.Anything, "C123", "네트워크 안내", msg.Timestamp, mock.Anything).Return(nil)
	f.notifier.On("NotifyInquiry", mock.Anything, "helpdesk-mapo", msg,
		domain.ParseCategory("네트워크"), true).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)

	f.messenger.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestPipeline_CategoryWithoutFormsGetsPlainReply(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	match := domain.Match{Question: "대관 문의", Answer: "대관 안내", Score: 0.9}

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("general")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return([]domain.Match{match})
	f.classifier.On("Classify", mock.Anything, msg.Text, "general").
		Return(classify.Result{Category: domain.ParseCategory("대관"), Score: 0.88, Matched: true})
	f.composer.On("Compose", mock.Anything, msg.Text, match).Return("생성된 답변")
	f.messenger.On("PostMessage", mock.Anything, "C123", "생성된 답변", msg.Timestamp).Return(nil)
	f.notifier.On("NotifyInquiry", mock.Anything, "general", msg,
		domain.ParseCategory("대관"), true).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)

	f.messenger.AssertNotCalled(t, "PostBlocks")
	f.messenger.AssertExpectations(t)
}

func TestPipeline_EmptyKnowledgeBaseNotifiesOnly(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("general")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return(nil)
	f.notifier.On("NotifyInquiry", mock.Anything, "general", msg, domain.CatchAll, false).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)

	// no channel reply, no classification, exactly one DM
	f.classifier.AssertNotCalled(t, "Classify")
	f.composer.AssertNotCalled(t, "Compose")
	f.messenger.AssertNotCalled(t, "PostMessage")
	f.messenger.AssertNotCalled(t, "PostBlocks")
	f.notifier.AssertNumberOfCalls(t, "NotifyInquiry", 1)
}

func TestPipeline_CatchAllClassificationNotifiesOnly(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	match := domain.Match{Question: "q", Answer: "a", Score: 0.85}

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("general")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return([]domain.Match{match})
	f.classifier.On("Classify", mock.Anything, msg.Text, "general").
		Return(classify.Result{Category: domain.CatchAll})
	f.notifier.On("NotifyInquiry", mock.Anything, "general", msg, domain.CatchAll, false).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)

	f.composer.AssertNotCalled(t, "Compose")
	f.messenger.AssertNotCalled(t, "PostMessage")
	f.messenger.AssertNotCalled(t, "PostBlocks")
	f.notifier.AssertNumberOfCalls(t, "NotifyInquiry", 1)
}

func TestPipeline_ThreadReplyIgnored(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	msg.ThreadTS = "1699999999.000001"

	f.pipeline.HandleMessage(context.Background(), msg)

	f.searcher.AssertNotCalled(t, "Search")
	f.notifier.AssertNotCalled(t, "NotifyInquiry")
}

func TestPipeline_InvalidMessageIgnored(t *testing.T) {
	f := newPipelineFixture()

	f.pipeline.HandleMessage(context.Background(), domain.InboundMessage{Text: "채널 없는 메시지"})

	f.searcher.AssertNotCalled(t, "Search")
	f.notifier.AssertNotCalled(t, "NotifyInquiry")
}

func TestPipeline_EmptyTextIgnored(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	msg.Text = ""

	f.pipeline.HandleMessage(context.Background(), msg)

	f.searcher.AssertNotCalled(t, "Search")
}

func TestPipeline_DuplicateDeliveryProcessedOnce(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("general")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return(nil)
	f.notifier.On("NotifyInquiry", mock.Anything, "general", msg, domain.CatchAll, false).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)
	f.pipeline.HandleMessage(context.Background(), msg)

	f.searcher.AssertNumberOfCalls(t, "Search", 1)
	f.notifier.AssertNumberOfCalls(t, "NotifyInquiry", 1)
}

func TestPipeline_ReplyGoesToExistingThreadParent(t *testing.T) {
	f := newPipelineFixture()
	msg := inbound()
	match := domain.Match{Question: "q", Answer: "a", Score: 0.9}

	f.messenger.On("ChannelName", mock.Anything, "C123").Return("general")
	f.searcher.On("Search", mock.Anything, msg.Text, 3, 0.82).Return([]domain.Match{match})
	f.classifier.On("Classify", mock.Anything, msg.Text, "general").
		Return(classify.Result{Category: domain.ParseCategory("주차"), Score: 0.9, Matched: true})
	f.composer.On("Compose", mock.Anything, msg.Text, match).Return("답변")
	f.messenger.On("PostBlocks", mock.Anything, "C123", "주차 안내", msg.Timestamp, mock.MatchedBy(func(blocks []slack.Block) bool {
		require.Len(t, blocks, 2)
		_, isSection := blocks[0].(*slack.SectionBlock)
		actions, isActions := blocks[1].(*slack.ActionBlock)
		return isSection && isActions && len(actions.Elements.ElementSet) == 2
	})).Return(nil)
	f.notifier.On("NotifyInquiry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	f.pipeline.HandleMessage(context.Background(), msg)

	f.messenger.AssertExpectations(t)
}

func TestActionBlocks(t *testing.T) {
	t.Run("category with forms", func(t *testing.T) {
		blocks := ActionBlocks(domain.ParseCategory("홈페이지"), "답변")
		require.Len(t, blocks, 2)

		section := blocks[0].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "답변")
		assert.Contains(t, section.Text.Text, "아래 버튼에서 해당하는 항목을 선택")

		actions := blocks[1].(*slack.ActionBlock)
		require.Len(t, actions.Elements.ElementSet, 4)
		first := actions.Elements.ElementSet[0].(*slack.ButtonBlockElement)
		assert.Equal(t, "open_account_recovery_modal", first.ActionID)
	})

	t.Run("location suffix does not hide buttons", func(t *testing.T) {
		blocks := ActionBlocks(domain.ParseCategory("주차(마포)"), "답변")
		require.Len(t, blocks, 2)
	})

	t.Run("category without forms", func(t *testing.T) {
		assert.Nil(t, ActionBlocks(domain.ParseCategory("대관"), "답변"))
		assert.Nil(t, ActionBlocks(domain.CatchAll, "답변"))
	})
}
