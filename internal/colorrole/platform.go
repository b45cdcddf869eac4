package colorrole

import (
	"github.com/diamondburned/arikawa/v2/discord"
)

// Platform is the set of Discord calls the engine needs. Every method is
// expected to return fresh data; the engine never caches roles or members
// across calls.
type Platform interface {
	// Roles returns all roles in the guild.
	Roles(guildID discord.GuildID) ([]discord.Role, error)
	// CreateRole creates a role with the given name and color, then moves it
	// to the given position.
	CreateRole(guildID discord.GuildID, name string, color discord.Color, pos int) (*discord.Role, error)
	// DeleteRole deletes a role from the guild.
	DeleteRole(guildID discord.GuildID, roleID discord.RoleID) error

	// Member returns a single member of the guild.
	Member(guildID discord.GuildID, userID discord.UserID) (*discord.Member, error)
	// Members returns every member of the guild.
	Members(guildID discord.GuildID) ([]discord.Member, error)
	// AddRole gives the member a role.
	AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error
	// RemoveRoles takes the given roles away from the member.
	RemoveRoles(guildID discord.GuildID, userID discord.UserID, roleIDs []discord.RoleID) error
}

// RoleByName searches roles for one named exactly name.
func RoleByName(roles []discord.Role, name string) (*discord.Role, bool) {
	for i, role := range roles {
		if role.Name == name {
			return &roles[i], true
		}
	}
	return nil, false
}

// RoleByID searches roles for the given ID.
func RoleByID(roles []discord.Role, id discord.RoleID) (*discord.Role, bool) {
	for i, role := range roles {
		if role.ID == id {
			return &roles[i], true
		}
	}
	return nil, false
}
