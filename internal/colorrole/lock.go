package colorrole

import (
	"sync"

	"github.com/diamondburned/arikawa/v2/discord"
)

// lockMap is a map of guild IDs to mutexes. Guilds never share a mutex, so
// work in one guild never waits on another.
type lockMap sync.Map

// Lock locks the guild's mutex and returns the function to unlock it.
func (lm *lockMap) Lock(guildID discord.GuildID) (unlock func()) {
	v, _ := (*sync.Map)(lm).LoadOrStore(guildID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
