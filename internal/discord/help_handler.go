package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/discord/common"
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

const helpCommandName = "yardım"

// helpCommand は /yardım。ストレージには触れない。
type helpCommand struct{}

func (helpCommand) Name() string {
	return helpCommandName
}

func (helpCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        helpCommandName,
		Description: "Tüm komutları listeler",
	}
}

func (helpCommand) Handle(_ context.Context, reply *common.Reply, _ *discordgo.InteractionCreate) error {
	return reply.PublicEmbed(helpEmbed())
}

func helpEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📚 Komut Listesi",
		Color:       0x5865F2,
		Description: "Aşağıdaki komutları kullanabilirsiniz:",
		Footer:      &discordgo.MessageEmbedFooter{Text: common.FooterText},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	for _, c := range domain.Categories() {
		info, _ := domain.Info(c)
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "/" + info.Command, Value: info.Help.List, Inline: true},
			&discordgo.MessageEmbedField{Name: "/" + info.Command + " " + subAdd, Value: info.Help.Add, Inline: true},
			&discordgo.MessageEmbedField{Name: "/" + info.Command + " " + subRemove, Value: info.Help.Remove, Inline: true},
		)
	}
	return embed
}
