package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

func TestUserUsecase_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("first contact stores the user with the default role", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindBySubject", ctx, domain.UserID("new-subject")).Return(nil, domain.ErrUserNotFound)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := NewUserUsecase(users, logger.Discard())
		user, err := uc.Sync(ctx, &domain.Identity{Subject: "new-subject", Name: "Ada", Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)
		users.AssertExpectations(t)
	})

	t.Run("drifted contact fields are patched", func(t *testing.T) {
		stored := &domain.User{Subject: "s1", Name: "Old Name", Email: "old@example.com", Role: domain.RoleOwner}
		users := new(MockUserRepository)
		users.On("FindBySubject", ctx, domain.UserID("s1")).Return(stored, nil)
		users.On("UpdateContact", ctx, domain.UserID("s1"), "New Name", "new@example.com").Return(nil)

		uc := NewUserUsecase(users, logger.Discard())
		user, err := uc.Sync(ctx, &domain.Identity{Subject: "s1", Name: "New Name", Email: "new@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, domain.RoleOwner, user.Role, "role must survive a contact refresh")
		users.AssertExpectations(t)
	})

	t.Run("matching record is a no-op", func(t *testing.T) {
		stored := &domain.User{Subject: "s1", Name: "Same", Email: "same@example.com", Role: domain.RoleUser}
		users := new(MockUserRepository)
		users.On("FindBySubject", ctx, domain.UserID("s1")).Return(stored, nil)

		uc := NewUserUsecase(users, logger.Discard())
		user, err := uc.Sync(ctx, &domain.Identity{Subject: "s1", Name: "Same", Email: "same@example.com"})

		require.NoError(t, err)
		assert.Equal(t, stored, user)
		users.AssertNotCalled(t, "UpdateContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		uc := NewUserUsecase(new(MockUserRepository), logger.Discard())

		_, err := uc.Sync(ctx, nil)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestUserUsecase_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		stored := &domain.User{Subject: "s1", Name: "Ada", Role: domain.RoleAdmin}
		users := new(MockUserRepository)
		users.On("FindBySubject", ctx, domain.UserID("s1")).Return(stored, nil)

		uc := NewUserUsecase(users, logger.Discard())
		user, err := uc.Me(ctx, &domain.Identity{Subject: "s1"})

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("unknown caller is user not found", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindBySubject", ctx, domain.UserID("ghost")).Return(nil, domain.ErrUserNotFound)

		uc := NewUserUsecase(users, logger.Discard())
		_, err := uc.Me(ctx, &domain.Identity{Subject: "ghost"})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		uc := NewUserUsecase(new(MockUserRepository), logger.Discard())

		_, err := uc.Me(ctx, nil)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
