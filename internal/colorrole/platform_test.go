package colorrole

import (
	"sort"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v2/discord"
	"github.com/pkg/errors"
)

const testGuild discord.GuildID = 69420

var errNotFound = errors.New("404 not found")

// fakeGuild is an in-memory Platform for a single guild. It is safe for
// concurrent use but does nothing to stop duplicate role names, much like
// Discord itself.
type fakeGuild struct {
	mutex   sync.Mutex
	lastID  discord.Snowflake
	roles   []discord.Role
	members map[discord.UserID]*discord.Member

	// fail makes the named method return the error.
	fail map[string]error
	// createDelay widens the window between looking up and creating a role.
	createDelay time.Duration

	calls map[string]int
}

var _ Platform = (*fakeGuild)(nil)

func newFakeGuild(anchorPos int) *fakeGuild {
	g := &fakeGuild{
		lastID:  1000,
		members: map[discord.UserID]*discord.Member{},
		fail:    map[string]error{},
		calls:   map[string]int{},
	}

	g.roles = append(g.roles,
		discord.Role{ID: discord.RoleID(testGuild), Name: "@everyone", Position: 0},
	)

	for pos := 1; pos <= anchorPos+2; pos++ {
		name := "role"
		if pos == anchorPos {
			name = AnchorName
		}
		g.newRoleLocked(name, 0, pos)
	}

	return g
}

func (g *fakeGuild) newRoleLocked(name string, color discord.Color, pos int) discord.Role {
	g.lastID++

	// Moving a role into a position pushes everything at or above it up by
	// one.
	for i := range g.roles {
		if g.roles[i].Position >= pos && pos > 0 {
			g.roles[i].Position++
		}
	}

	role := discord.Role{
		ID:       discord.RoleID(g.lastID),
		Name:     name,
		Color:    color,
		Position: pos,
	}
	g.roles = append(g.roles, role)
	return role
}

// addRole adds a role on top of the others, bypassing the Platform calls.
func (g *fakeGuild) addRole(name string) discord.RoleID {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	top := 0
	for _, role := range g.roles {
		if role.Position > top {
			top = role.Position
		}
	}

	return g.newRoleLocked(name, 0, top+1).ID
}

func (g *fakeGuild) addMember(id discord.UserID, name string, roles ...discord.RoleID) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.members[id] = &discord.Member{
		User:    discord.User{ID: id, Username: name},
		RoleIDs: append([]discord.RoleID(nil), roles...),
	}
}

func (g *fakeGuild) call(name string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.calls[name]++
	return g.fail[name]
}

func (g *fakeGuild) callCount(name string) int {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.calls[name]
}

func (g *fakeGuild) Roles(guildID discord.GuildID) ([]discord.Role, error) {
	if err := g.call("Roles"); err != nil {
		return nil, err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	return append([]discord.Role(nil), g.roles...), nil
}

func (g *fakeGuild) CreateRole(
	guildID discord.GuildID, name string, color discord.Color, pos int) (*discord.Role, error) {

	if err := g.call("CreateRole"); err != nil {
		return nil, err
	}

	time.Sleep(g.createDelay)

	g.mutex.Lock()
	defer g.mutex.Unlock()

	role := g.newRoleLocked(name, color, pos)
	return &role, nil
}

func (g *fakeGuild) DeleteRole(guildID discord.GuildID, roleID discord.RoleID) error {
	if err := g.call("DeleteRole"); err != nil {
		return err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	for i, role := range g.roles {
		if role.ID == roleID {
			g.roles = append(g.roles[:i], g.roles[i+1:]...)
			break
		}
	}

	for _, m := range g.members {
		m.RoleIDs = without(m.RoleIDs, roleID)
	}

	return nil
}

func (g *fakeGuild) Member(guildID discord.GuildID, userID discord.UserID) (*discord.Member, error) {
	if err := g.call("Member"); err != nil {
		return nil, err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	m, ok := g.members[userID]
	if !ok {
		return nil, errNotFound
	}

	cpy := *m
	cpy.RoleIDs = append([]discord.RoleID(nil), m.RoleIDs...)
	return &cpy, nil
}

func (g *fakeGuild) Members(guildID discord.GuildID) ([]discord.Member, error) {
	if err := g.call("Members"); err != nil {
		return nil, err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	members := make([]discord.Member, 0, len(g.members))
	for _, m := range g.members {
		cpy := *m
		cpy.RoleIDs = append([]discord.RoleID(nil), m.RoleIDs...)
		members = append(members, cpy)
	}

	return members, nil
}

func (g *fakeGuild) AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error {
	if err := g.call("AddRole"); err != nil {
		return err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	m, ok := g.members[userID]
	if !ok {
		return errNotFound
	}

	m.RoleIDs = append(m.RoleIDs, roleID)
	return nil
}

func (g *fakeGuild) RemoveRoles(
	guildID discord.GuildID, userID discord.UserID, roleIDs []discord.RoleID) error {

	if err := g.call("RemoveRoles"); err != nil {
		return err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	m, ok := g.members[userID]
	if !ok {
		return errNotFound
	}

	for _, id := range roleIDs {
		m.RoleIDs = without(m.RoleIDs, id)
	}

	return nil
}

// roleNames returns the sorted names of all roles matching match.
func (g *fakeGuild) roleNames(match func(discord.Role) bool) []string {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	var names []string
	for _, role := range g.roles {
		if match(role) {
			names = append(names, role.Name)
		}
	}

	sort.Strings(names)
	return names
}

// memberRoleNames returns the sorted names of the roles held by the member.
func (g *fakeGuild) memberRoleNames(userID discord.UserID) []string {
	g.mutex.Lock()
	held := append([]discord.RoleID(nil), g.members[userID].RoleIDs...)
	g.mutex.Unlock()

	return g.roleNames(func(r discord.Role) bool { return hasRole(held, r.ID) })
}

func (g *fakeGuild) role(name string) (discord.Role, bool) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	r, ok := RoleByName(g.roles, name)
	if !ok {
		return discord.Role{}, false
	}
	return *r, true
}

func without(ids []discord.RoleID, id discord.RoleID) []discord.RoleID {
	out := ids[:0]
	for _, i := range ids {
		if i != id {
			out = append(out, i)
		}
	}
	return out
}
