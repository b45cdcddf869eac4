// Package colorrole manages color roles: roles named after a hex color that
// give members a colored name. Each member holds at most one, each color has
// at most one role per guild, and roles nobody holds are deleted.
package colorrole

import (
	"log"

	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/colorbot/internal/color"
)

// AnchorName is the name of the role that new color roles are placed at.
const AnchorName = "colors"

// Engine serializes color role changes per guild. All state is read from
// the Platform on every call.
type Engine struct {
	platform Platform
	locks    lockMap
}

// New creates a new engine.
func New(p Platform) *Engine {
	return &Engine{platform: p}
}

// ResolveOrCreate returns the role for the given color, creating it if the
// guild does not have one yet.
func (e *Engine) ResolveOrCreate(guildID discord.GuildID, c color.Value) (*discord.Role, error) {
	defer e.locks.Lock(guildID)()

	role, _, err := e.resolveOrCreate(guildID, c)
	return role, err
}

// Collect deletes every color role in the guild that no member holds, except
// for exempt. The IDs of the deleted roles are returned.
func (e *Engine) Collect(guildID discord.GuildID, exempt discord.RoleID) ([]discord.RoleID, error) {
	defer e.locks.Lock(guildID)()

	return e.collect(guildID, exempt)
}

func logf(f string, v ...interface{}) {
	log.Printf("[colors] "+f, v...)
}
