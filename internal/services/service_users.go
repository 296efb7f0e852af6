package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailInUse   = errors.New("email already in use")
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the provided fields; empty fields keep their
// current value. Changing the email re-checks uniqueness.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Lastname != "" {
		user.Lastname = req.Lastname
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
		user.Email = email
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user; posts, likes, comments, follow edges and
// notifications go with it through the foreign keys.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) Search(ctx context.Context, query string) ([]models.PublicUser, error) {
	return s.users.SearchByNamePrefix(ctx, query)
}

func (s *UserService) ListAll(ctx context.Context) ([]dto.UserWithPostCount, error) {
	return s.users.ListWithPostCount(ctx)
}
