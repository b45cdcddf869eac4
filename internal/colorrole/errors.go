package colorrole

import (
	"fmt"

	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/pkg/errors"
)

// ErrMissingAnchorRole is returned if the guild has no role named AnchorName.
var ErrMissingAnchorRole = errors.New(`missing "` + AnchorName + `" base role`)

// PlatformError wraps an error returned by Discord while the engine was
// working on a guild.
type PlatformError struct {
	Op      string
	GuildID discord.GuildID
	Err     error
}

func wrapPlatform(err error, guildID discord.GuildID, op string) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Op: op, GuildID: guildID, Err: err}
}

func (err *PlatformError) Error() string {
	return fmt.Sprintf("discord error: failed to %s in guild %v: %v", err.Op, err.GuildID, err.Err)
}

// Unwrap returns the underlying Discord error.
func (err *PlatformError) Unwrap() error { return err.Err }

// Cause is Unwrap for github.com/pkg/errors.
func (err *PlatformError) Cause() error { return err.Err }
