// Package composer turns a knowledge match into the reply posted back to
// the channel, in the language the question was asked in.
package composer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/podolabs/frontdesk/internal/domain"
)

// Language is the detected language of an inbound question.
type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

// hangulRatioThreshold is the fraction of hangul runes at or above which a
// message counts as Korean.
const hangulRatioThreshold = 0.3

// DetectLanguage classifies text as Korean or English by the fraction of
// hangul syllables among all runes.
func DetectLanguage(text string) Language {
	runes := []rune(text)
	total := len(runes)
	if total == 0 {
		total = 1
	}
	hangul := 0
	for _, r := range runes {
		if r >= '가' && r <= '힣' {
			hangul++
		}
	}
	if float64(hangul)/float64(total) >= hangulRatioThreshold {
		return LanguageKorean
	}
	return LanguageEnglish
}

// Generator produces a chat completion from a system and user prompt.
type Generator interface {
	GenerateReply(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Composer builds grounded replies.
type Composer struct {
	generator Generator
}

// NewComposer creates a Composer.
func NewComposer(generator Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose generates a reply grounded in the best knowledge match and appends
// the wait-for-staff footer in the question's language. Generation failure
// leaves the body empty; the footer alone still tells the user a human will
// follow up.
func (c *Composer) Compose(ctx context.Context, text string, best domain.Match) string {
	lang := DetectLanguage(text)

	userPrompt := fmt.Sprintf("User query: %s\n\nFAQ Question: %s\nFAQ Answer: %s\n",
		text, best.Question, best.Answer)

	raw, err := c.generator.GenerateReply(ctx, systemPrompt(lang), userPrompt)
	if err != nil {
		log.Printf("composer: reply generation failed: %v", err)
		raw = ""
	}
	body := stripLanguageTags(raw)

	footer := footerEnglish
	if lang == LanguageKorean {
		footer = footerKorean
	}
	if body == "" {
		return footer
	}
	return body + "\n\n" + footer
}

const (
	footerKorean  = "잠시만 기다려주시면, 유관 부서 담당자가 댓글을 남겨 드릴 것입니다."
	footerEnglish = "Please wait a moment, the relevant department will post a reply soon."
)

// stripLanguageTags removes the language markers some completions prepend.
func stripLanguageTags(answer string) string {
	replacer := strings.NewReplacer("[ko]", "", "[en]", "", "[한국어]", "", "[English]", "")
	return strings.TrimSpace(replacer.Replace(answer))
}

func systemPrompt(lang Language) string {
	if lang == LanguageKorean {
		return systemPromptKorean
	}
	return systemPromptEnglish
}

const systemPromptKorean = `당신은 내부 서비스에서 작동하는 한국어 전용 AI 어시스턴트입니다. 답변을 작성할 때 다음 지침을 준수하세요.

1) 첫 문장을 '안녕하세요, 헬프데스크 AI봇입니다.'라고 시작하여, 답변자가 AI봇임을 명시합니다.

2) 모든 문단은 빈 줄을 사이에 두고 구분해, 읽기 좋게 작성합니다.

3) 불필요한 쌍따옴표(")는 쓰지 마세요. 꼭 필요한 인용이나 예시가 아닌 이상, 쌍따옴표 없이 표현합니다.

4) 만약 사용자의 질문에 대해 적절한 데이터가 전혀 없다면,
   해당 질문에 대해 데이터 기반 답변을 드릴 수 없습니다.
   라고만 간단히 안내하세요.

5) 사용자가 회사 내부 업무 범위를 벗어난 질문을 했다면,
   해당 범위 밖이라 답변이 어렵습니다.
   정도로 짧고 정중하게 안내하세요.

6) 사용자의 질문에 대응할 데이터가 있다면,
   질문 내용을 충분히 공감한 뒤,
   친절하고 정확하게 그 데이터를 바탕으로 답변하세요.

7) 이미 사용자는 이 채널(Slack)을 통해 문의하고 있습니다.
   "문의 게시판에 글을 남기라"거나, 다른 부서에 추가 문의를 하라는 안내 문구는 넣지 않습니다.
   필요한 조치가 있다면, 이 채널에서 직접 안내하거나 처리하는 것으로 가정합니다.

8) 봇이 "제가 직접 할 수 없습니다"라는 표현은 굳이 쓰지 않아도 됩니다.
   과거 유사 사례나 복잡한 절차 설명도 지양하고,
   "확인 후 조치해 드리겠습니다" 정도로 간단히 마무리합니다.

9) 민감 정보(IP, MAC 주소 등) 수집 방법에 대해 구체적으로 언급하지 않습니다.
   공개 채널에 남겨 달라거나, DM으로 보내 달라고도 말하지 않습니다.
   단지 "추가 정보 확인이 필요하다" 정도로만 간단히 안내하고 넘어갑니다.

이 모든 지침을 지키면서, 최종적으로 한국어로만 답변을 작성하세요.
`

const systemPromptEnglish = `You are an English-only AI assistant operating within an internal service context. Please follow these guidelines when composing your answers:

1) Begin your response with the phrase: "Hello, I'm an AI assistant." to clearly indicate that you are an AI bot.

2) Separate paragraphs with a blank line to make them more readable.

3) Do not use unnecessary quotation marks ("). Unless absolutely needed for a direct quote or example, avoid them.

4) If you have no relevant data to answer the user's question, reply briefly:
   I cannot provide a data-based answer to this question.

5) If the question is beyond your scope (unrelated to internal operations),
   politely state This is outside my scope, so I cannot provide an answer.

6) If relevant data exists, start by acknowledging the user's concern with empathy.
   Then provide a clear, accurate answer based on that data.

7) The user is already contacting you via Slack.
   Do not instruct them to visit another inquiry board or contact a separate department for further questions.
   Assume any needed actions can be handled in this channel.

8) There's no need to say "I cannot do this directly."
   Avoid lengthy past examples or complicated procedures;
   a concise assurance like "We will look into it and assist" is sufficient.

9) For sensitive data (IP, MAC address, etc.), do not instruct the user to post it here or send it via DM.
   Simply mention that additional details might be required, without specifying how to share them.

Please adhere to all these instructions, and ensure your final responses are in English only.
`
