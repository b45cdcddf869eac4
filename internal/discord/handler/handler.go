// Package handler turns incoming messages into color role assignments and
// reacts to them.
package handler

import (
	"log"

	"github.com/diamondburned/arikawa/v2/api"
	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/arikawa/v2/gateway"
	"github.com/diamondburned/colorbot/internal/color"
	"github.com/diamondburned/colorbot/internal/colorrole"
	"github.com/dustin/go-humanize"
)

// Reactions used as feedback.
const (
	AcceptEmoji api.Emoji = "☑"
	RejectEmoji api.Emoji = "❌"
)

// Outcome is what Handle did with a message.
type Outcome uint8

const (
	// Ignored means the message was not a color.
	Ignored Outcome = iota
	// Rejected means the color was too close to the background.
	Rejected
	// NoGuild means the message was not sent in a guild.
	NoGuild
	// Failed means the assignment returned an error.
	Failed
	// Assigned means the member got the color.
	Assigned
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	case NoGuild:
		return "no guild"
	case Failed:
		return "failed"
	case Assigned:
		return "assigned"
	default:
		return "unknown"
	}
}

// Assigner assigns color roles. It is implemented by *colorrole.Engine.
type Assigner interface {
	Assign(discord.GuildID, discord.UserID, color.Value) (*colorrole.Assignment, error)
}

// Reactor adds reactions to messages. It is implemented by *api.Client.
type Reactor interface {
	React(discord.ChannelID, discord.MessageID, api.Emoji) error
}

var (
	_ Assigner = (*colorrole.Engine)(nil)
	_ Reactor  = (*api.Client)(nil)
)

type Handler struct {
	assigner Assigner
	reactor  Reactor
	checker  color.Checker
}

func New(a Assigner, r Reactor, c color.Checker) *Handler {
	return &Handler{
		assigner: a,
		reactor:  r,
		checker:  c,
	}
}

// OnMessageCreate is the gateway handler.
func (h *Handler) OnMessageCreate(ev *gateway.MessageCreateEvent) {
	h.Handle(&ev.Message)
}

// Handle processes a single message. It is safe to call concurrently.
func (h *Handler) Handle(msg *discord.Message) Outcome {
	c, ok := color.Parse(msg.Content)
	if !ok {
		return Ignored
	}

	if !h.checker.Acceptable(c) {
		log.Printf(
			"[colors] Rejected %s for %s: contrast %s is not above %s",
			c, msg.Author.Username,
			humanize.FormatFloat("#.##", h.checker.Ratio(c)),
			humanize.FormatFloat("#.##", h.checker.Threshold),
		)
		h.react(msg, RejectEmoji)
		return Rejected
	}

	if !msg.GuildID.IsValid() {
		log.Println("[colors] Failed to get guild for message", msg.ID)
		return NoGuild
	}

	a, err := h.assigner.Assign(msg.GuildID, msg.Author.ID, c)
	if err != nil {
		log.Println("[colors] Error assigning color:", err)
		return Failed
	}

	h.react(msg, AcceptEmoji)
	log.Println("[colors] Assigned role", a)

	return Assigned
}

func (h *Handler) react(msg *discord.Message, emoji api.Emoji) {
	if err := h.reactor.React(msg.ChannelID, msg.ID, emoji); err != nil {
		log.Printf("[colors] Failed to react to message %v: %v", msg.ID, err)
	}
}
