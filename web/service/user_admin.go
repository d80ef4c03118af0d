package service

import (
	"ofs-panel/database"
	"ofs-panel/database/model"
)

// UserAdminService backs the VIP management panel: listing accounts and
// mutating another account's role or ban state.
type UserAdminService struct{}

// List returns every account newest-first. Substring filtering happens on the
// client; the server deliberately exposes no search parameter.
func (s *UserAdminService) List() ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Model(model.User{}).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// SetRole changes another account's role. Only VIP accounts may do this, and
// never to themselves; the self-guard lives here, not in the UI.
func (s *UserAdminService) SetRole(actor *model.User, targetID int, role string) (*model.User, error) {
	if actor.Role != model.RoleVIP {
		return nil, ErrForbidden
	}
	if actor.Id == targetID {
		return nil, ErrForbidden
	}
	if role != model.RoleUser && role != model.RoleAdmin && role != model.RoleVIP {
		return nil, ErrValidation
	}

	db := database.GetDB()
	target := &model.User{}
	err := db.Model(model.User{}).First(target, targetID).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	err = db.Model(model.User{}).
		Where("id = ?", targetID).
		Update("role", role).Error
	if err != nil {
		return nil, err
	}
	target.Role = role
	return target, nil
}

// ToggleBan flips another account's banned flag. The change bites on the
// target's next sign-in attempt; any live session keeps working because there
// is no forced termination mechanism.
func (s *UserAdminService) ToggleBan(actor *model.User, targetID int) (*model.User, error) {
	if actor.Role != model.RoleVIP {
		return nil, ErrForbidden
	}
	if actor.Id == targetID {
		return nil, ErrForbidden
	}

	db := database.GetDB()
	target := &model.User{}
	err := db.Model(model.User{}).First(target, targetID).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	err = db.Model(model.User{}).
		Where("id = ?", targetID).
		Update("is_banned", !target.IsBanned).Error
	if err != nil {
		return nil, err
	}
	target.IsBanned = !target.IsBanned
	return target, nil
}
