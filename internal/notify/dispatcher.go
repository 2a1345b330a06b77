// Package notify posts change announcements to Discord channels after a record
// mutation has been committed.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/domain"
)

const FooterText = "Klan Yönetim Botu"

// Gateway is the part of the bot session the dispatcher needs.
type Gateway interface {
	Ready() bool
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelSource resolves the target channel id of a category, "" when none is set.
type ChannelSource interface {
	ChannelFor(category domain.Category) string
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type Dispatcher struct {
	gateway  Gateway
	channels ChannelSource
	enabled  bool
	logger   Logger
}

// NewDispatcher returns a dispatcher. gateway may be nil when the bot is not
// configured; every event is then skipped.
func NewDispatcher(gateway Gateway, channels ChannelSource, enabled bool, logger Logger) *Dispatcher {
	return &Dispatcher{
		gateway:  gateway,
		channels: channels,
		enabled:  enabled,
		logger:   logger,
	}
}

// Publish sends the announcement for event. Failures are logged and dropped.
func (d *Dispatcher) Publish(ctx context.Context, event domain.Event) {
	err := d.send(ctx, event)
	switch {
	case err == nil:
		observe(event, resultSent)
	case errors.Is(err, domain.ErrUnavailable):
		observe(event, resultSkipped)
		d.logger.Debugf("notify skipped: category=%s type=%s: %v", event.Category, event.Type, err)
	default:
		observe(event, resultFailed)
		d.logger.Errorf("notify failed: category=%s type=%s key=%q: %v", event.Category, event.Type, event.Key, err)
	}
}

func (d *Dispatcher) send(ctx context.Context, event domain.Event) error {
	if !d.enabled {
		return fmt.Errorf("notifications disabled: %w", domain.ErrUnavailable)
	}
	if d.gateway == nil || !d.gateway.Ready() {
		return fmt.Errorf("gateway not connected: %w", domain.ErrUnavailable)
	}
	info, ok := domain.Info(event.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", event.Category)
	}
	channelID := d.channels.ChannelFor(event.Category)
	if channelID == "" {
		return fmt.Errorf("no channel for %s: %w", event.Category, domain.ErrUnavailable)
	}

	ch, err := d.gateway.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	if !isTextChannel(ch) {
		d.logger.Warnf("notify channel %s for %s is not a text channel", channelID, event.Category)
		return fmt.Errorf("channel %s is not a text channel: %w", channelID, domain.ErrUnavailable)
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildEmbed(info, event)},
	}
	if event.Actor != "" {
		msg.Content = fmt.Sprintf("<@%s> tarafından yapılan değişiklik:", event.Actor)
	}
	if _, err := d.gateway.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to %s: %w", channelID, err)
	}
	return nil
}

func isTextChannel(ch *discordgo.Channel) bool {
	if ch == nil {
		return false
	}
	return ch.Type == discordgo.ChannelTypeGuildText || ch.Type == discordgo.ChannelTypeGuildNews
}

// BuildEmbed renders the announcement. Deletes carry no fields.
func BuildEmbed(info domain.CategoryInfo, event domain.Event) *discordgo.MessageEmbed {
	var text string
	switch event.Type {
	case domain.EventCreate:
		text = info.Notify.Create
	case domain.EventUpdate:
		text = info.Notify.Update
	default:
		text = info.Notify.Delete
	}
	key := event.Key
	if key == "" {
		key = "Bilinmeyen"
	}

	at := event.At
	if at.IsZero() {
		at = time.Now()
	}
	embed := &discordgo.MessageEmbed{
		Title:       info.Title,
		Description: fmt.Sprintf(text, key),
		Color:       info.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
		Timestamp:   at.Format(time.RFC3339),
	}
	if event.Type != domain.EventDelete {
		for _, d := range event.Details {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   d.Label,
				Value:  d.Value,
				Inline: true,
			})
		}
	}
	return embed
}
