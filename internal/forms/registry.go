// Package forms defines the follow-up modal forms reachable from a reply's
// action buttons. Each form is declared once and drives three things: the
// button that opens it, the modal layout, and the submission summary DMed to
// the owning department.
package forms

import (
	"strings"

	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/slack-go/slack"
)

// FieldKind selects the input element rendered for a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
)

// Option is one choice of a select field.
type Option struct {
	Label string
	Value string
}

// Field is a single modal input.
type Field struct {
	BlockID  string
	ActionID string
	Label    string
	Kind     FieldKind
	Options  []Option

	// SummaryLabel prefixes the field's value in the submission DM.
	SummaryLabel string
	// EmptyValue substitutes for a blank submission, e.g. "(미등록)".
	EmptyValue string
}

// Form is one follow-up form.
type Form struct {
	ActionID    string
	CallbackID  string
	ButtonLabel string
	Title       string

	// Category routes the submission DM.
	Category domain.Category
	// SummaryTitle heads the submission DM, e.g. "[주차 등록 신청]".
	SummaryTitle string

	Fields []Field
}

// ModalView renders the form as a Slack modal.
func (f *Form) ModalView() slack.ModalViewRequest {
	blocks := make([]slack.Block, 0, len(f.Fields))
	for _, field := range f.Fields {
		blocks = append(blocks, field.inputBlock())
	}

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: f.CallbackID,
		Title:      plainText(f.Title),
		Submit:     plainText("제출"),
		Close:      plainText("취소"),
		Blocks:     slack.Blocks{BlockSet: blocks},
	}
}

func (f *Field) inputBlock() *slack.InputBlock {
	var element slack.BlockElement
	switch f.Kind {
	case FieldSelect:
		options := make([]*slack.OptionBlockObject, 0, len(f.Options))
		for _, opt := range f.Options {
			options = append(options, slack.NewOptionBlockObject(opt.Value, plainText(opt.Label), nil))
		}
		element = slack.NewOptionsSelectBlockElement(
			slack.OptTypeStatic, plainText("선택"), f.ActionID, options...)
	default:
		element = slack.NewPlainTextInputBlockElement(nil, f.ActionID)
	}
	return slack.NewInputBlock(f.BlockID, plainText(f.Label), nil, element)
}

// Summary renders the submission DM body from the modal's submitted state.
func (f *Form) Summary(submitterName string, state *slack.ViewState) string {
	var b strings.Builder
	b.WriteString("*" + f.SummaryTitle + "*\n")
	b.WriteString("작성자: " + submitterName)
	for _, field := range f.Fields {
		b.WriteString("\n" + field.SummaryLabel + ": " + field.submittedValue(state))
	}
	return b.String()
}

func (f *Field) submittedValue(state *slack.ViewState) string {
	if state == nil {
		return f.EmptyValue
	}
	action, ok := state.Values[f.BlockID][f.ActionID]
	if !ok {
		return f.EmptyValue
	}

	if f.Kind == FieldSelect {
		for _, opt := range f.Options {
			if opt.Value == action.SelectedOption.Value {
				return opt.Label
			}
		}
		return domain.CategoryCatchAll
	}

	if action.Value == "" {
		return f.EmptyValue
	}
	return action.Value
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

var (
	byActionID   = make(map[string]*Form)
	byCallbackID = make(map[string]*Form)
)

func init() {
	for _, f := range All {
		byActionID[f.ActionID] = f
		byCallbackID[f.CallbackID] = f
	}
}

// ByActionID resolves the form opened by a reply button.
func ByActionID(actionID string) (*Form, bool) {
	f, ok := byActionID[actionID]
	return f, ok
}

// ByCallbackID resolves the form a view submission belongs to.
func ByCallbackID(callbackID string) (*Form, bool) {
	f, ok := byCallbackID[callbackID]
	return f, ok
}

// ForCategory returns the forms offered for a base category, in button order.
func ForCategory(base string) []*Form {
	var out []*Form
	for _, f := range All {
		if f.Category.Base == base {
			out = append(out, f)
		}
	}
	return out
}
