package manager

import (
	"context"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/repository"
)

// UserStatusChecker moves a user's funnel status forward only.
type UserStatusChecker struct {
	users repository.UserRepository
}

func NewUserStatusChecker(users repository.UserRepository) *UserStatusChecker {
	return &UserStatusChecker{users: users}
}

// ChangeStatus reports whether the status was changed and persisted.
func (s *UserStatusChecker) ChangeStatus(ctx context.Context, user *model.User, status string) (bool, error) {
	next, ok := constants.UserStatusRank[status]
	if !ok {
		return false, nil
	}
	current, known := constants.UserStatusRank[user.Status]
	if known && current >= next {
		return false, nil
	}

	user.Status = status
	if err := s.users.Save(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
