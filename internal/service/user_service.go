package service

import (
	"context"
	"errors"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/nickmonteleone/sharebandb-backend/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNotAccountSelf = errors.New("not the account owner")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes the authenticated user's own account; owned listings and
// their photos cascade in the store.
func (s *UserService) Delete(ctx context.Context, tokenUserID, id int64) error {
	if tokenUserID != id {
		return ErrNotAccountSelf
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, id)
}
