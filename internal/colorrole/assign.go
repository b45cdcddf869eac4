package colorrole

import (
	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/colorbot/internal/color"
)

// Assignment describes a finished color change.
type Assignment struct {
	Role   discord.Role
	Member discord.Member
	// Removed contains the color roles taken away from the member.
	Removed []discord.RoleID
	// Deleted contains the orphaned color roles deleted afterwards.
	Deleted []discord.RoleID
}

// UserName returns the member's nickname, or the username if there is none.
func (a *Assignment) UserName() string {
	if a.Member.Nick != "" {
		return a.Member.Nick
	}
	return a.Member.User.Username
}

func (a *Assignment) String() string {
	return a.Role.Name + " for " + a.UserName()
}

// Assign gives the member the role for the given color. Any other color role
// the member holds is removed, and color roles left without members are
// deleted.
//
// The steps are not atomic on Discord's side: if a call fails halfway, the
// returned error describes the step that failed and the earlier steps stay
// applied. If only the orphan cleanup fails, the Assignment is returned
// alongside the error.
func (e *Engine) Assign(
	guildID discord.GuildID, userID discord.UserID, c color.Value) (*Assignment, error) {

	defer e.locks.Lock(guildID)()

	role, roles, err := e.resolveOrCreate(guildID, c)
	if err != nil {
		return nil, err
	}

	m, err := e.platform.Member(guildID, userID)
	if err != nil {
		return nil, wrapPlatform(err, guildID, "get member")
	}

	a := Assignment{
		Role:    *role,
		Member:  *m,
		Removed: previousColors(roles, m.RoleIDs, role.ID),
	}

	if len(a.Removed) > 0 {
		err := e.platform.RemoveRoles(guildID, userID, a.Removed)
		if err != nil {
			return nil, wrapPlatform(err, guildID, "remove old color roles")
		}
	}

	if !hasRole(m.RoleIDs, role.ID) {
		if err := e.platform.AddRole(guildID, userID, role.ID); err != nil {
			return nil, wrapPlatform(err, guildID, "add role "+role.Name)
		}
	}

	a.Member.RoleIDs = replaceRoles(m.RoleIDs, a.Removed, role.ID)

	a.Deleted, err = e.collect(guildID, role.ID)
	return &a, err
}

// previousColors returns the held roles that are color roles, other than
// keep. Normally there is at most one, but all of them are returned in case
// something else gave the member more.
func previousColors(roles []discord.Role, held []discord.RoleID, keep discord.RoleID) []discord.RoleID {
	var old []discord.RoleID

	for _, id := range held {
		if id == keep {
			continue
		}
		r, ok := RoleByID(roles, id)
		if ok && color.IsRoleName(r.Name) {
			old = append(old, id)
		}
	}

	return old
}

func hasRole(held []discord.RoleID, id discord.RoleID) bool {
	for _, h := range held {
		if h == id {
			return true
		}
	}
	return false
}

// replaceRoles returns a copy of held without removed, with added appended if
// it is not already there.
func replaceRoles(held, removed []discord.RoleID, added discord.RoleID) []discord.RoleID {
	out := make([]discord.RoleID, 0, len(held)+1)

	for _, id := range held {
		if !hasRole(removed, id) {
			out = append(out, id)
		}
	}

	if !hasRole(out, added) {
		out = append(out, added)
	}

	return out
}
