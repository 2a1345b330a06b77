package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CodeZF375/crimsonbot/internal/discord/common"
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

type Logger interface {
	Errorf(format string, args ...interface{})
}

// commandError carries the reply text to show when err aborts a command.
type commandError struct {
	Reply string
	Err   error
}

func (e *commandError) Error() string {
	return e.Err.Error()
}

func (e *commandError) Unwrap() error {
	return e.Err
}

// Router は Discord の Interaction を各ハンドラに振り分ける役割。
type Router struct {
	commands map[string]command
	timeout  time.Duration
	logger   Logger
}

// NewRouter で必要な service を全部 DI しておく。
func NewRouter(svcs Services, timeout time.Duration, logger Logger) *Router {
	r := &Router{
		commands: make(map[string]command),
		timeout:  timeout,
		logger:   logger,
	}
	for _, c := range newCommands(svcs) {
		r.commands[c.Name()] = c
	}
	return r
}

// HandleInteraction は discordgo のイベントハンドラとして登録される入口。
func (r *Router) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r.dispatch(s, i)
}

func (r *Router) dispatch(resp common.Responder, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	cmd, ok := r.commands[data.Name]
	if !ok {
		common.Logf("[discord] unknown command: %s", data.Name)
		return
	}
	common.Logf("[discord] command: name=%s guild=%s user=%s", data.Name, i.GuildID, common.InteractionUserID(i))

	reply := common.NewReply(resp, i)
	ctx, cancel := common.CommandContext(r.timeout)
	defer cancel()
	ctx = domain.WithActor(ctx, common.InteractionUserID(i))

	defer func() {
		if p := recover(); p != nil {
			r.fail(reply, data.Name, fmt.Errorf("panic: %v", p))
		}
	}()
	if err := cmd.Handle(ctx, reply, i); err != nil {
		r.fail(reply, data.Name, err)
	}
}

func (r *Router) fail(reply *common.Reply, name string, err error) {
	r.logger.Errorf("discord command /%s failed: %v", name, err)

	msg := common.GenericFailure
	var ce *commandError
	if errors.As(err, &ce) && ce.Reply != "" {
		msg = ce.Reply
	}
	if serr := reply.Ephemeral(msg); serr != nil {
		r.logger.Errorf("discord command /%s: error reply failed: %v", name, serr)
	}
}
