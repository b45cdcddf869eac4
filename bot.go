// Package colorbot is a Discord bot that gives members a colored role when
// they post a hex color code such as #1a2b3c.
package colorbot

import (
	"log"
	"sync"

	"github.com/diamondburned/arikawa/v2/gateway"
	"github.com/diamondburned/colorbot/internal/color"
	"github.com/diamondburned/colorbot/internal/colorrole"
	"github.com/diamondburned/colorbot/internal/config"
	"github.com/diamondburned/colorbot/internal/discord/handler"
	"github.com/diamondburned/colorbot/internal/discord/state"
	"github.com/diamondburned/colorbot/internal/funcutil"
	"github.com/pkg/errors"
)

// Bot is a connected color role bot.
type Bot struct {
	state   *state.Instance
	engine  *colorrole.Engine
	handler *handler.Handler

	mutex  sync.Mutex
	detach func()
}

// New creates a bot from the given configuration. It does not connect to
// the gateway yet.
func New(cfg *config.Config) (*Bot, error) {
	s, err := state.NewFromToken(cfg.Token, state.Options{
		LogRequests: cfg.LogRequests,
	})
	if err != nil {
		return nil, err
	}

	return NewFromInstance(s, color.NewChecker(cfg.MinContrast)), nil
}

// NewFromInstance creates a bot on top of an existing instance.
func NewFromInstance(s *state.Instance, checker color.Checker) *Bot {
	engine := colorrole.New(s.Platform())

	return &Bot{
		state:   s,
		engine:  engine,
		handler: handler.New(engine, s.Client, checker),
	}
}

// Open adds the event handlers and connects to the gateway.
func (b *Bot) Open() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.detach != nil {
		return errors.New("bot is already open")
	}

	b.detach = funcutil.JoinCancels(
		b.state.AddHandler(b.handler.OnMessageCreate),
		b.state.AddHandler(func(r *gateway.ReadyEvent) {
			log.Printf("[colors] %s is connected!", r.User.Username)
		}),
	)

	if err := b.state.Open(); err != nil {
		b.detach()
		b.detach = nil
		return errors.Wrap(err, "failed to open gateway")
	}

	return nil
}

// Close removes the event handlers and disconnects.
func (b *Bot) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.detach != nil {
		b.detach()
		b.detach = nil
	}

	return b.state.Close()
}
