package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/discord/common"
	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/service"
)

const (
	subList   = "liste"
	subAdd    = "ekle"
	subRemove = "kaldır"
)

type optionDef struct {
	Name        string
	Description string
	Required    bool
	Choices     []string
}

// categoryCommand は 1 カテゴリ分の /<command> liste|ekle|kaldır を扱う。
type categoryCommand[T domain.Entity[T]] struct {
	info       domain.CategoryInfo
	svc        service.RecordService[T]
	addOptions []optionDef
	// removeDescription describes the key option of kaldır.
	removeDescription string
	fromOptions       func(opts map[string]string) T
}

func (c *categoryCommand[T]) Name() string {
	return c.info.Command
}

func (c *categoryCommand[T]) Definition() *discordgo.ApplicationCommand {
	add := make([]*discordgo.ApplicationCommandOption, 0, len(c.addOptions))
	for _, o := range c.addOptions {
		opt := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        o.Name,
			Description: o.Description,
			Required:    o.Required,
		}
		for _, ch := range o.Choices {
			opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: ch, Value: ch})
		}
		add = append(add, opt)
	}

	return &discordgo.ApplicationCommand{
		Name:         c.info.Command,
		Description:  c.info.Chat.Description,
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subList,
				Description: c.info.Chat.ListDescription,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subAdd,
				Description: c.info.Chat.AddDescription,
				Options:     add,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subRemove,
				Description: c.info.Chat.RemoveDescription,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        c.info.KeyOption,
						Description: c.removeDescription,
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *categoryCommand[T]) Handle(ctx context.Context, reply *common.Reply, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return fmt.Errorf("/%s: missing subcommand", c.info.Command)
	}
	sub := data.Options[0]
	opts := common.StringOptions(sub.Options)

	switch sub.Name {
	case subList:
		return c.list(ctx, reply)
	case subAdd:
		return c.add(ctx, reply, opts)
	case subRemove:
		return c.remove(ctx, reply, strings.TrimSpace(opts[c.info.KeyOption]))
	default:
		return fmt.Errorf("/%s: unknown subcommand %q", c.info.Command, sub.Name)
	}
}

func (c *categoryCommand[T]) list(ctx context.Context, reply *common.Reply) error {
	recs, err := c.svc.List(ctx)
	if err != nil {
		return &commandError{Reply: c.info.Chat.ListFailed, Err: err}
	}
	if len(recs) == 0 {
		return reply.Public(c.info.Chat.Empty)
	}
	return reply.PublicEmbed(listEmbed(c.info, recs))
}

func (c *categoryCommand[T]) add(ctx context.Context, reply *common.Reply, opts map[string]string) error {
	rec := c.fromOptions(opts)
	key := rec.Normalized().Key()

	_, err := c.svc.Create(ctx, rec)
	if ve, ok := domain.IsValidation(err); ok {
		return reply.Ephemeral(strings.Join(ve.Messages(), "\n"))
	}
	switch {
	case errors.Is(err, domain.ErrConflict):
		return reply.Ephemeral(fmt.Sprintf(c.info.Chat.Exists, key))
	case err != nil:
		return &commandError{Reply: c.info.Chat.AddFailed, Err: err}
	}
	return reply.Ephemeral(fmt.Sprintf(c.info.Chat.Added, key))
}

func (c *categoryCommand[T]) remove(ctx context.Context, reply *common.Reply, key string) error {
	if key == "" {
		return reply.Ephemeral(fmt.Sprintf(c.info.Chat.NotFound, key))
	}
	rec, err := c.svc.GetByKey(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return reply.Ephemeral(fmt.Sprintf(c.info.Chat.NotFound, key))
	}
	if err != nil {
		return &commandError{Reply: c.info.Chat.RemoveFailed, Err: err}
	}

	_, err = c.svc.Delete(ctx, rec.RecordID())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return reply.Ephemeral(fmt.Sprintf(c.info.Chat.NotFound, key))
	case err != nil:
		return &commandError{Reply: c.info.Chat.RemoveFailed, Err: err}
	}
	return reply.Ephemeral(fmt.Sprintf(c.info.Chat.Removed, key))
}

func boolPtr(v bool) *bool {
	return &v
}
