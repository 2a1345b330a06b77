package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/discord/common"
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

// Discord の embed 上限
const (
	maxEmbedFields   = 25
	maxFieldNameLen  = 256
	maxFieldValueLen = 1024
)

func listEmbed[T domain.Entity[T]](info domain.CategoryInfo, recs []T) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     info.ListTitle,
		Color:     info.ListColor,
		Footer:    &discordgo.MessageEmbedFooter{Text: common.FooterText},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if len(recs) > maxEmbedFields {
		embed.Description = fmt.Sprintf("İlk %d kayıt gösteriliyor (toplam %d).", maxEmbedFields, len(recs))
		recs = recs[:maxEmbedFields]
	}
	for _, rec := range recs {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  common.Truncate(rec.Key(), maxFieldNameLen),
			Value: common.Truncate(detailLines(rec.Details()), maxFieldValueLen),
		})
	}
	return embed
}

func detailLines(details []domain.Detail) string {
	if len(details) == 0 {
		return "Bilgi yok"
	}
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("**%s:** %s", d.Label, d.Value))
	}
	return strings.Join(lines, "\n")
}
