package common

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
)

// GenericFailure is sent when a command fails without a more specific message.
const GenericFailure = "Bu komutu çalıştırırken bir hata oluştu!"

const FooterText = "Klan Yönetim Botu"

// Responder は Interaction への返信に必要な discordgo.Session のメソッドだけを切り出したもの。
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Reply wraps one interaction and remembers whether the first response was sent,
// so later messages go out as follow-ups.
type Reply struct {
	r       Responder
	i       *discordgo.InteractionCreate
	replied atomic.Bool
}

func NewReply(r Responder, i *discordgo.InteractionCreate) *Reply {
	return &Reply{r: r, i: i}
}

func (rp *Reply) Replied() bool {
	return rp.replied.Load()
}

func (rp *Reply) respond(data *discordgo.InteractionResponseData) error {
	if rp.replied.Load() {
		params := &discordgo.WebhookParams{
			Content: data.Content,
			Embeds:  data.Embeds,
			Flags:   data.Flags,
		}
		_, err := rp.r.FollowupMessageCreate(rp.i.Interaction, false, params)
		return err
	}
	err := rp.r.InteractionRespond(rp.i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		rp.replied.Store(true)
	}
	return err
}

func (rp *Reply) Ephemeral(msg string) error {
	return rp.respond(&discordgo.InteractionResponseData{
		Content: msg,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func (rp *Reply) Public(msg string) error {
	return rp.respond(&discordgo.InteractionResponseData{Content: msg})
}

func (rp *Reply) PublicEmbed(embed *discordgo.MessageEmbed) error {
	return rp.respond(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

func CommandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func DebugEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DISCORD_DEBUG")))
	return v == "1" || v == "true" || v == "yes"
}

func Logf(format string, args ...any) {
	if DebugEnabled() {
		fmt.Printf(format+"\n", args...)
	}
}

func InteractionUserID(i *discordgo.InteractionCreate) string {
	user := InteractionUser(i)
	if user == nil {
		return ""
	}
	return user.ID
}

func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i == nil {
		return nil
	}
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return nil
}

// StringOptions collects string option values by name. Non-string options are skipped.
func StringOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(opts))
	for _, o := range opts {
		if o == nil || o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[o.Name] = o.StringValue()
	}
	return out
}

// Truncate cuts s to at most n runes, marking the cut with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
