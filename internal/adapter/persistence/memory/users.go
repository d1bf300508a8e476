package memory

import (
	"context"
	"slices"
	"sort"

	"solar_portal/internal/domain/entities"
)

func (u *Users) GetByID(_ context.Context, id string) (entities.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	return u.s.users[id], nil
}

func (u *Users) ListByRole(_ context.Context, role entities.Role) ([]entities.User, error) {
	return u.filter(func(user entities.User) bool { return user.Role == role }), nil
}

func (u *Users) ListInstallersByCounty(_ context.Context, county string) ([]entities.User, error) {
	return u.filter(func(user entities.User) bool { return user.ServesCounty(county) }), nil
}

func (u *Users) Upsert(_ context.Context, user entities.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user.ServiceCounties = slices.Clone(user.ServiceCounties)
	u.s.users[user.ID] = user
	return nil
}

func (u *Users) filter(keep func(entities.User) bool) []entities.User {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	out := make([]entities.User, 0)
	for _, user := range u.s.users {
		if keep(user) {
			out = append(out, user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
