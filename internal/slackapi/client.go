// Package slackapi wraps the Slack Web API calls the bot makes.
package slackapi

import (
	"context"
	"log"

	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/slack-go/slack"
)

// Fallback labels for lookups that fail; posting must not depend on the
// users/conversations read scopes being granted.
const (
	unknownChannel = "Unknown Channel"
	unknownUser    = "Unknown User"
)

// API is the subset of the Slack Web API the bot uses.
type API interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// Client layers the bot's messaging operations over the Slack Web API.
type Client struct {
	api API
}

// NewClient creates a Client from a bot token.
func NewClient(botToken string, opts ...slack.Option) *Client {
	return &Client{api: slack.New(botToken, opts...)}
}

// NewClientWithAPI creates a Client over an existing API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// API exposes the underlying Slack API, for callers that need calls this
// wrapper does not cover (socket mode wiring).
func (c *Client) API() API {
	return c.api
}

// PostMessage posts text to a channel. A non-empty threadTS makes it a
// thread reply.
func (c *Client) PostMessage(ctx context.Context, channelID, text, threadTS string) error {
	options := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}
	_, _, err := c.api.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "slack message post failed", err)
	}
	return nil
}

// PostBlocks posts a Block Kit message to a channel with fallback text for
// notifications.
func (c *Client) PostBlocks(ctx context.Context, channelID, fallbackText, threadTS string, blocks ...slack.Block) error {
	options := []slack.MsgOption{
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallbackText, false),
	}
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}
	_, _, err := c.api.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "slack block post failed", err)
	}
	return nil
}

// PostDirectMessage opens (or resumes) a DM conversation with the user and
// posts text into it.
func (c *Client) PostDirectMessage(ctx context.Context, userID, text string) error {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "slack dm open failed", err)
	}
	return c.PostMessage(ctx, channel.ID, text, "")
}

// ChannelName resolves a channel ID to its name.
func (c *Client) ChannelName(ctx context.Context, channelID string) string {
	channel, err := c.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil || channel == nil || channel.Name == "" {
		if err != nil {
			log.Printf("slackapi: conversation info lookup failed for %s: %v", channelID, err)
		}
		return unknownChannel
	}
	return channel.Name
}

// UserDisplayName resolves a user ID to a human-readable name, preferring
// the display name over the real name.
func (c *Client) UserDisplayName(ctx context.Context, userID string) string {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil || user == nil {
		if err != nil {
			log.Printf("slackapi: user info lookup failed for %s: %v", userID, err)
		}
		return unknownUser
	}
	if name := user.Profile.DisplayName; name != "" {
		return name
	}
	if user.RealName != "" {
		return user.RealName
	}
	return unknownUser
}

// OpenModal opens a modal view for the interaction identified by triggerID.
func (c *Client) OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if _, err := c.api.OpenViewContext(ctx, triggerID, view); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "slack modal open failed", err)
	}
	return nil
}
