package colorrole

import (
	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/colorbot/internal/color"
)

// resolveOrCreate must be called with the guild locked. The returned slice is
// the guild's roles as read before any creation.
func (e *Engine) resolveOrCreate(
	guildID discord.GuildID, c color.Value) (*discord.Role, []discord.Role, error) {

	roles, err := e.platform.Roles(guildID)
	if err != nil {
		return nil, nil, wrapPlatform(err, guildID, "get roles")
	}

	anchor, ok := RoleByName(roles, AnchorName)
	if !ok {
		return nil, roles, ErrMissingAnchorRole
	}

	name := c.String()

	if role, ok := roleByColor(roles, c); ok {
		return role, roles, nil
	}

	role, err := e.platform.CreateRole(guildID, name, discord.Color(c.Uint32()), anchor.Position)
	if err != nil {
		return nil, roles, wrapPlatform(err, guildID, "create role "+name)
	}

	logf("created role %s at position %d in guild %v", name, anchor.Position, guildID)
	return role, roles, nil
}

// roleByColor finds the role for c. The canonical lowercase name is preferred,
// but a role named in any case, such as #1A2B3C, is still the same color.
func roleByColor(roles []discord.Role, c color.Value) (*discord.Role, bool) {
	if role, ok := RoleByName(roles, c.String()); ok {
		return role, true
	}

	for i, role := range roles {
		if v, ok := color.Parse(role.Name); ok && v == c {
			return &roles[i], true
		}
	}

	return nil, false
}
