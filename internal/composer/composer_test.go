package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateReply(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Language
	}{
		{"pure korean", "주차 등록은 어떻게 하나요", LanguageKorean},
		{"pure english", "How do I register my car?", LanguageEnglish},
		{"mixed mostly korean", "wifi가 안 돼요 도와주세요", LanguageKorean},
		{"mixed mostly english", "My 주차 card is not working at all today", LanguageEnglish},
		{"empty", "", LanguageEnglish},
		{"digits only", "12345", LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}

func TestComposer_Compose_Korean(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateReply", mock.Anything, mock.MatchedBy(func(sys string) bool {
		return strings.Contains(sys, "한국어 전용")
	}), mock.MatchedBy(func(user string) bool {
		return strings.Contains(user, "User query: 주차 등록 방법 알려주세요") &&
			strings.Contains(user, "FAQ Question: 주차 등록") &&
			strings.Contains(user, "FAQ Answer: 안내 데스크에 문의하세요")
	})).Return("안녕하세요, 헬프데스크 AI봇입니다.\n\n안내 데스크에 문의해 주세요.", nil)

	c := NewComposer(gen)
	msg := c.Compose(context.Background(), "주차 등록 방법 알려주세요", domain.Match{
		Question: "주차 등록",
		Answer:   "안내 데스크에 문의하세요",
	})

	require.Contains(t, msg, "안내 데스크에 문의해 주세요.")
	assert.True(t, strings.HasSuffix(msg, footerKorean))
	gen.AssertExpectations(t)
}

func TestComposer_Compose_English(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateReply", mock.Anything, mock.MatchedBy(func(sys string) bool {
		return strings.Contains(sys, "English-only")
	}), mock.Anything).Return("Hello, I'm an AI assistant. Please visit the front desk.", nil)

	c := NewComposer(gen)
	msg := c.Compose(context.Background(), "How do I register my car?", domain.Match{
		Question: "parking registration",
		Answer:   "visit the front desk",
	})

	assert.True(t, strings.HasSuffix(msg, footerEnglish))
}

func TestComposer_Compose_StripsLanguageTags(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateReply", mock.Anything, mock.Anything, mock.Anything).
		Return("[ko] 안녕하세요. [한국어] 안내드립니다.", nil)

	c := NewComposer(gen)
	msg := c.Compose(context.Background(), "주차 문의입니다", domain.Match{})

	assert.NotContains(t, msg, "[ko]")
	assert.NotContains(t, msg, "[한국어]")
	assert.Contains(t, msg, "안녕하세요.")
}

func TestComposer_Compose_GenerationFailureFooterOnly(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateReply", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("rate limited"))

	c := NewComposer(gen)
	msg := c.Compose(context.Background(), "주차 문의입니다", domain.Match{})

	// the user still learns a human will follow up
	assert.Equal(t, footerKorean, msg)
}
