package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

type UserUsecase struct {
	users  domain.UserRepository
	logger *logger.Logger
}

func NewUserUsecase(users domain.UserRepository, log *logger.Logger) *UserUsecase {
	return &UserUsecase{users: users, logger: log}
}

// Sync mirrors the identity provider's record locally. First authenticated
// contact creates the user with the default role; later contacts patch name
// and email when they drift. Users are never deleted and the role is never
// touched here.
func (uc *UserUsecase) Sync(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := uc.users.FindBySubject(ctx, identity.Subject)
	switch {
	case err == nil:
		if user.Name != identity.Name || user.Email != identity.Email {
			if err := uc.users.UpdateContact(ctx, identity.Subject, identity.Name, identity.Email); err != nil {
				uc.logger.Error("UserUsecase.Sync: contact update failed", "subject", string(identity.Subject), "error", err.Error())
				return nil, err
			}
			user.Name = identity.Name
			user.Email = identity.Email
			uc.logger.Info("UserUsecase.Sync: contact fields refreshed", "subject", string(identity.Subject))
		}
		return user, nil

	case errors.Is(err, domain.ErrUserNotFound):
		user = &domain.User{
			Subject:   identity.Subject,
			Name:      identity.Name,
			Email:     identity.Email,
			Role:      domain.RoleUser,
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.users.Create(ctx, user); err != nil {
			uc.logger.Error("UserUsecase.Sync: create failed", "subject", string(identity.Subject), "error", err.Error())
			return nil, err
		}
		uc.logger.Info("UserUsecase.Sync: new user stored", "subject", string(identity.Subject))
		return user, nil

	default:
		return nil, err
	}
}

// Me returns the caller's stored record.
func (uc *UserUsecase) Me(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	return uc.users.FindBySubject(ctx, identity.Subject)
}
