// Package state wraps the arikawa state used by the bot and adapts its REST
// client to the color role engine.
package state

import (
	"log"
	"strings"

	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/arikawa/v2/gateway"
	"github.com/diamondburned/arikawa/v2/state"
	"github.com/diamondburned/arikawa/v2/utils/httputil/httpdriver"
	"github.com/pkg/errors"
)

// Intents are the gateway intents the bot needs: guild messages to see color
// codes, and guild members so the member list can be fetched.
const Intents = gateway.IntentGuilds | gateway.IntentGuildMembers | gateway.IntentGuildMessages

// ErrNoToken is returned if NewFromToken is given an empty token.
var ErrNoToken = errors.New("missing bot token")

type Instance struct {
	*state.State
	UserID discord.UserID
}

// Options changes how the instance is created.
type Options struct {
	// LogRequests logs the path of every REST request.
	LogRequests bool
}

// NewFromToken creates an instance for a bot token. The "Bot " prefix is
// added if the token does not already have it.
func NewFromToken(token string, opts Options) (*Instance, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	if !strings.HasPrefix(token, "Bot ") {
		token = "Bot " + token
	}

	s, err := state.New(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create state")
	}

	return New(s, opts)
}

// New wraps an existing state. The state must not be opened yet.
func New(s *state.State, opts Options) (*Instance, error) {
	// Prefetch user.
	u, err := s.Me()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	s.Gateway.AddIntents(Intents)

	if opts.LogRequests {
		s.Client.OnRequest = append(s.Client.OnRequest, func(r httpdriver.Request) error {
			log.Println("[Discord] Request", r.GetPath())
			return nil
		})
	}

	return &Instance{
		State:  s,
		UserID: u.ID,
	}, nil
}

// Platform returns the REST adapter for the color role engine. It bypasses
// the state cache so every read is fresh.
func (s *Instance) Platform() *Platform {
	return NewPlatform(s.Client)
}
