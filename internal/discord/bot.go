package discord

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

const (
	StatusOnline     = "online"
	StatusOffline    = "offline"
	StatusNotStarted = "not_started"
)

// Bot は discordgo セッションのライフサイクルと接続状態を持つ。
type Bot struct {
	session *discordgo.Session
	ready   atomic.Bool
}

func NewBot(token string) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("discord token is empty")
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	// スラッシュコマンドだけなので Guilds intent で足りる
	s.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{session: s}
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Ready) { b.ready.Store(true) })
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) { b.ready.Store(true) })
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) { b.ready.Store(false) })
	return b, nil
}

func (b *Bot) AddHandler(handler interface{}) func() {
	return b.session.AddHandler(handler)
}

// Start opens the gateway. It gives up when ctx is done first; the pending
// connection is then closed.
func (b *Bot) Start(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- b.session.Open() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		go func() {
			if err := <-done; err == nil {
				_ = b.session.Close()
			}
		}()
		return ctx.Err()
	}
}

func (b *Bot) RegisterCommands(ctx context.Context, appID, guildID string) error {
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}
	if appID == "" {
		return fmt.Errorf("application id unknown")
	}
	_, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, Commands(), discordgo.WithContext(ctx))
	return err
}

func (b *Bot) Ready() bool {
	return b != nil && b.ready.Load()
}

func (b *Bot) Status() string {
	switch {
	case b == nil:
		return StatusNotStarted
	case b.ready.Load():
		return StatusOnline
	default:
		return StatusOffline
	}
}

func (b *Bot) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return b.session.Channel(channelID, options...)
}

func (b *Bot) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	return b.session.ChannelMessageSendComplex(channelID, data, options...)
}

func (b *Bot) Close() error {
	if b == nil {
		return nil
	}
	b.ready.Store(false)
	return b.session.Close()
}
