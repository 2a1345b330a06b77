package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/discord/common"
	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/service"
)

// Services は各カテゴリの service。Commands() の定義生成だけなら空でよい。
type Services struct {
	Allies  service.RecordService[domain.Ally]
	Enemies service.RecordService[domain.Enemy]
	Roster  service.RecordService[domain.RosterMember]
	WarInfo service.RecordService[domain.WarInfo]
	Servers service.RecordService[domain.GameServer]
}

type command interface {
	Name() string
	Definition() *discordgo.ApplicationCommand
	Handle(ctx context.Context, reply *common.Reply, i *discordgo.InteractionCreate) error
}

var kindChoices = []string{domain.KindClan, domain.KindPlayer}

func newCommands(svcs Services) []command {
	return []command{
		helpCommand{},
		&categoryCommand[domain.Ally]{
			info: domain.AllyInfo,
			svc:  svcs.Allies,
			addOptions: []optionDef{
				{Name: "isim", Description: "Müttefiğin ismi", Required: true},
				{Name: "tür", Description: "Müttefiğin türü", Required: true, Choices: kindChoices},
				{Name: "bilgi", Description: "Müttefik hakkında bilgi"},
			},
			removeDescription: "Kaldırılacak müttefiğin ismi",
			fromOptions: func(o map[string]string) domain.Ally {
				return domain.Ally{Name: o["isim"], Kind: o["tür"], Note: domain.StringPtr(o["bilgi"])}
			},
		},
		&categoryCommand[domain.Enemy]{
			info: domain.EnemyInfo,
			svc:  svcs.Enemies,
			addOptions: []optionDef{
				{Name: "isim", Description: "Düşmanın ismi", Required: true},
				{Name: "tür", Description: "Düşmanın türü", Required: true, Choices: kindChoices},
				{Name: "neden", Description: "Düşmanlık nedeni"},
			},
			removeDescription: "Kaldırılacak düşmanın ismi",
			fromOptions: func(o map[string]string) domain.Enemy {
				return domain.Enemy{Name: o["isim"], Kind: o["tür"], Reason: domain.StringPtr(o["neden"])}
			},
		},
		&categoryCommand[domain.RosterMember]{
			info: domain.RosterInfo,
			svc:  svcs.Roster,
			addOptions: []optionDef{
				{Name: "isim", Description: "Üyenin ismi", Required: true},
				{Name: "rol", Description: "Üyenin rolü", Required: true},
				{Name: "giriş_tarihi", Description: "Giriş tarihi (gg.aa.yyyy)", Required: true},
			},
			removeDescription: "Kaldırılacak üyenin ismi",
			fromOptions: func(o map[string]string) domain.RosterMember {
				return domain.RosterMember{Name: o["isim"], Role: o["rol"], JoinDate: o["giriş_tarihi"]}
			},
		},
		&categoryCommand[domain.WarInfo]{
			info: domain.WarInfoInfo,
			svc:  svcs.WarInfo,
			addOptions: []optionDef{
				{Name: "başlık", Description: "Bilgi başlığı", Required: true},
				{Name: "bilgi", Description: "Bilgi içeriği", Required: true},
			},
			removeDescription: "Kaldırılacak bilginin başlığı",
			fromOptions: func(o map[string]string) domain.WarInfo {
				return domain.WarInfo{Title: o["başlık"], Body: o["bilgi"]}
			},
		},
		&categoryCommand[domain.GameServer]{
			info: domain.ServerInfo,
			svc:  svcs.Servers,
			addOptions: []optionDef{
				{Name: "isim", Description: "Sunucu ismi", Required: true},
				{Name: "ip", Description: "Sunucu IP adresi", Required: true},
				{Name: "port", Description: "Sunucu portu"},
				{Name: "bilgi", Description: "Sunucu hakkında bilgi"},
			},
			removeDescription: "Kaldırılacak sunucunun ismi",
			fromOptions: func(o map[string]string) domain.GameServer {
				return domain.GameServer{
					Name:    o["isim"],
					Address: o["ip"],
					Port:    domain.StringPtr(o["port"]),
					Note:    domain.StringPtr(o["bilgi"]),
				}
			},
		},
	}
}

// Commands はこのBotで使う全てのスラッシュコマンド定義を返す。
func Commands() []*discordgo.ApplicationCommand {
	cmds := newCommands(Services{})
	out := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Definition())
	}
	return out
}
