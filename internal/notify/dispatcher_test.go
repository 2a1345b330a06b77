package notify

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZF375/crimsonbot/internal/domain"
)

type MockGateway struct {
	ReadyFunc   func() bool
	ChannelFunc func(channelID string) (*discordgo.Channel, error)
	SendFunc    func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	sent []*discordgo.MessageSend
}

func (m *MockGateway) Ready() bool {
	if m.ReadyFunc == nil {
		return true
	}
	return m.ReadyFunc()
}

func (m *MockGateway) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if m.ChannelFunc == nil {
		return &discordgo.Channel{ID: channelID, Type: discordgo.ChannelTypeGuildText}, nil
	}
	return m.ChannelFunc(channelID)
}

func (m *MockGateway) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, data)
	if m.SendFunc == nil {
		return &discordgo.Message{ChannelID: channelID}, nil
	}
	return m.SendFunc(channelID, data)
}

type channelMap map[domain.Category]string

func (c channelMap) ChannelFor(category domain.Category) string {
	if id, ok := c[category]; ok {
		return id
	}
	return c["default"]
}

func quietLogger() *log.Logger {
	l := log.New("notify-test")
	l.SetOutput(io.Discard)
	return l
}

func sampleEvent(typ domain.EventType) domain.Event {
	return domain.Event{
		Type:     typ,
		Category: domain.CategoryServers,
		RecordID: 7,
		Key:      "TurkMMO",
		Details: []domain.Detail{
			{Label: "Bilgi", Value: "Ana sunucumuz"},
			{Label: "IP", Value: "play.turkmmo.com"},
			{Label: "Port", Value: "25565"},
		},
		At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_SendsEmbed(t *testing.T) {
	gw := &MockGateway{}
	var gotChannel string
	gw.SendFunc = func(channelID string, _ *discordgo.MessageSend) (*discordgo.Message, error) {
		gotChannel = channelID
		return &discordgo.Message{}, nil
	}
	d := NewDispatcher(gw, channelMap{domain.CategoryServers: "srv", "default": "def"}, true, quietLogger())

	event := sampleEvent(domain.EventCreate)
	event.Actor = "42"
	before := testutil.ToFloat64(notificationsTotal.WithLabelValues("sunucular", "create", resultSent))
	d.Publish(context.Background(), event)

	require.Len(t, gw.sent, 1)
	assert.Equal(t, "srv", gotChannel)
	msg := gw.sent[0]
	assert.Equal(t, "<@42> tarafından yapılan değişiklik:", msg.Content)
	require.Len(t, msg.Embeds, 1)
	embed := msg.Embeds[0]
	assert.Equal(t, "🖥️ Sunucular", embed.Title)
	assert.Equal(t, "**TurkMMO** sunucusu eklendi", embed.Description)
	assert.Equal(t, domain.ServerInfo.Color, embed.Color)
	assert.Equal(t, FooterText, embed.Footer.Text)
	assert.Equal(t, "2024-05-01T12:00:00Z", embed.Timestamp)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "IP", embed.Fields[1].Name)
	assert.True(t, embed.Fields[1].Inline)

	after := testutil.ToFloat64(notificationsTotal.WithLabelValues("sunucular", "create", resultSent))
	assert.Equal(t, before+1, after)
}

func TestDispatcher_FallsBackToDefaultChannel(t *testing.T) {
	gw := &MockGateway{}
	var gotChannel string
	gw.SendFunc = func(channelID string, _ *discordgo.MessageSend) (*discordgo.Message, error) {
		gotChannel = channelID
		return &discordgo.Message{}, nil
	}
	d := NewDispatcher(gw, channelMap{"default": "def"}, true, quietLogger())

	d.Publish(context.Background(), sampleEvent(domain.EventUpdate))
	assert.Equal(t, "def", gotChannel)
	require.Len(t, gw.sent, 1)
	assert.Empty(t, gw.sent[0].Content)
	assert.Equal(t, "**TurkMMO** sunucu bilgileri güncellendi", gw.sent[0].Embeds[0].Description)
}

func TestDispatcher_Skips(t *testing.T) {
	tests := []struct {
		name     string
		gateway  *MockGateway
		channels channelMap
		enabled  bool
	}{
		{
			name:     "disabled",
			gateway:  &MockGateway{},
			channels: channelMap{"default": "def"},
			enabled:  false,
		},
		{
			name:     "no channel configured",
			gateway:  &MockGateway{},
			channels: channelMap{},
			enabled:  true,
		},
		{
			name:     "gateway not ready",
			gateway:  &MockGateway{ReadyFunc: func() bool { return false }},
			channels: channelMap{"default": "def"},
			enabled:  true,
		},
		{
			name: "voice channel",
			gateway: &MockGateway{ChannelFunc: func(id string) (*discordgo.Channel, error) {
				return &discordgo.Channel{ID: id, Type: discordgo.ChannelTypeGuildVoice}, nil
			}},
			channels: channelMap{"default": "def"},
			enabled:  true,
		},
		{
			name: "channel fetch fails",
			gateway: &MockGateway{ChannelFunc: func(string) (*discordgo.Channel, error) {
				return nil, errors.New("404 Not Found")
			}},
			channels: channelMap{"default": "def"},
			enabled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(tt.gateway, tt.channels, tt.enabled, quietLogger())
			assert.NotPanics(t, func() {
				d.Publish(context.Background(), sampleEvent(domain.EventCreate))
			})
			assert.Empty(t, tt.gateway.sent)
		})
	}
}

func TestDispatcher_NilGateway(t *testing.T) {
	d := NewDispatcher(nil, channelMap{"default": "def"}, true, quietLogger())
	assert.NotPanics(t, func() {
		d.Publish(context.Background(), sampleEvent(domain.EventDelete))
	})
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	gw := &MockGateway{SendFunc: func(string, *discordgo.MessageSend) (*discordgo.Message, error) {
		return nil, errors.New("HTTP 403 Forbidden")
	}}
	d := NewDispatcher(gw, channelMap{"default": "def"}, true, quietLogger())

	before := testutil.ToFloat64(notificationsTotal.WithLabelValues("sunucular", "delete", resultFailed))
	d.Publish(context.Background(), sampleEvent(domain.EventDelete))
	assert.Len(t, gw.sent, 1)
	after := testutil.ToFloat64(notificationsTotal.WithLabelValues("sunucular", "delete", resultFailed))
	assert.Equal(t, before+1, after)
}

func TestBuildEmbed_DeleteHasNoFields(t *testing.T) {
	embed := BuildEmbed(domain.EnemyInfo, domain.Event{
		Type:     domain.EventDelete,
		Category: domain.CategoryEnemies,
		Key:      "DarkLegion",
		Details:  []domain.Detail{{Label: "Tür", Value: "Klan"}},
	})
	assert.Equal(t, "**DarkLegion** artık düşman değil", embed.Description)
	assert.Empty(t, embed.Fields)
	assert.NotEmpty(t, embed.Timestamp)
}
