package state

import (
	"github.com/diamondburned/arikawa/v2/api"
	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/diamondburned/arikawa/v2/utils/json/option"
	"github.com/diamondburned/colorbot/internal/colorrole"
	"github.com/pkg/errors"
)

// Platform implements colorrole.Platform using REST calls only.
type Platform struct {
	client *api.Client
}

var _ colorrole.Platform = (*Platform)(nil)

func NewPlatform(c *api.Client) *Platform {
	return &Platform{client: c}
}

func (p *Platform) Roles(guildID discord.GuildID) ([]discord.Role, error) {
	return p.client.Roles(guildID)
}

// CreateRole creates the role, then moves it to pos, since Discord does not
// take a position on creation.
func (p *Platform) CreateRole(
	guildID discord.GuildID, name string, color discord.Color, pos int) (*discord.Role, error) {

	r, err := p.client.CreateRole(guildID, api.CreateRoleData{
		Name:  name,
		Color: color,
	})
	if err != nil {
		return nil, err
	}

	_, err = p.client.MoveRole(guildID, []api.MoveRoleData{{
		ID:       r.ID,
		Position: option.NewNullableInt(pos),
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to move role %s to position %d", name, pos)
	}

	r.Position = pos
	return r, nil
}

func (p *Platform) DeleteRole(guildID discord.GuildID, roleID discord.RoleID) error {
	return p.client.DeleteRole(guildID, roleID)
}

func (p *Platform) Member(guildID discord.GuildID, userID discord.UserID) (*discord.Member, error) {
	return p.client.Member(guildID, userID)
}

// Members fetches the whole member list of the guild.
func (p *Platform) Members(guildID discord.GuildID) ([]discord.Member, error) {
	return p.client.Members(guildID, 0)
}

func (p *Platform) AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error {
	return p.client.AddRole(guildID, userID, roleID)
}

// RemoveRoles removes the roles one by one. It stops at the first failure.
func (p *Platform) RemoveRoles(
	guildID discord.GuildID, userID discord.UserID, roleIDs []discord.RoleID) error {

	for _, id := range roleIDs {
		if err := p.client.RemoveRole(guildID, userID, id); err != nil {
			return errors.Wrapf(err, "failed to remove role %v", id)
		}
	}

	return nil
}
