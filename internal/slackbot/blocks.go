package slackbot

import (
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/podolabs/frontdesk/internal/forms"
	"github.com/slack-go/slack"
)

const buttonGuidance = "아래 버튼에서 해당하는 항목을 선택하여 정보를 입력해 주세요.\n" +
	"적절한 항목이 없다면, 담당자가 곧 댓글을 남길테니 기다려주세요"

// ActionBlocks renders the reply plus the follow-up form buttons registered
// for the category's base. Categories without forms return nil; the caller
// falls back to a plain text reply.
func ActionBlocks(cat domain.Category, reply string) []slack.Block {
	categoryForms := forms.ForCategory(cat.Base)
	if len(categoryForms) == 0 {
		return nil
	}

	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, reply+"\n\n"+buttonGuidance, false, false),
		nil, nil)

	buttons := make([]slack.BlockElement, 0, len(categoryForms))
	for _, f := range categoryForms {
		buttons = append(buttons, slack.NewButtonBlockElement(
			f.ActionID, "",
			slack.NewTextBlockObject(slack.PlainTextType, f.ButtonLabel, false, false)))
	}

	return []slack.Block{section, slack.NewActionBlock("", buttons...)}
}
