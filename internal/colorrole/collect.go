package colorrole

import (
	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/colorbot/internal/color"
	"github.com/dustin/go-humanize/english"
	"golang.org/x/sync/errgroup"
)

// collect must be called with the guild locked.
func (e *Engine) collect(guildID discord.GuildID, exempt discord.RoleID) ([]discord.RoleID, error) {
	members, err := e.platform.Members(guildID)
	if err != nil {
		return nil, wrapPlatform(err, guildID, "get members")
	}

	roles, err := e.platform.Roles(guildID)
	if err != nil {
		return nil, wrapPlatform(err, guildID, "get roles")
	}

	orphans := orphaned(roles, members, exempt)
	if len(orphans) == 0 {
		return nil, nil
	}

	var g errgroup.Group
	for _, id := range orphans {
		id := id
		g.Go(func() error {
			return wrapPlatform(e.platform.DeleteRole(guildID, id), guildID, "delete role "+id.String())
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logf("deleted %s in guild %v", english.Plural(len(orphans), "orphaned color role", ""), guildID)
	return orphans, nil
}

// orphaned returns the color roles that no member holds, excluding exempt.
func orphaned(roles []discord.Role, members []discord.Member, exempt discord.RoleID) []discord.RoleID {
	used := make(map[discord.RoleID]struct{}, len(roles))
	for _, m := range members {
		for _, id := range m.RoleIDs {
			used[id] = struct{}{}
		}
	}

	var orphans []discord.RoleID

	for _, role := range roles {
		if role.ID == exempt || !color.IsRoleName(role.Name) {
			continue
		}
		if _, ok := used[role.ID]; ok {
			continue
		}
		orphans = append(orphans, role.ID)
	}

	return orphans
}
