package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

type mockMotelRepository struct {
	mock.Mock
}

func (m *mockMotelRepository) Create(ctx context.Context, motel *domain.Motel) error {
	args := m.Called(ctx, motel)
	return args.Error(0)
}

func (m *mockMotelRepository) Patch(ctx context.Context, id domain.MotelID, patch domain.MotelPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockMotelRepository) UpdateStatus(ctx context.Context, id domain.MotelID, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockMotelRepository) FindByID(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motel), args.Error(1)
}

func (m *mockMotelRepository) FindByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Motel, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *mockMotelRepository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Motel, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *mockMotelRepository) FindAll(ctx context.Context) ([]*domain.Motel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *mockMotelRepository) Delete(ctx context.Context, id domain.MotelID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMotelCache struct {
	mock.Mock
}

func (m *mockMotelCache) GetMotel(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motel), args.Error(1)
}

func (m *mockMotelCache) SetMotel(ctx context.Context, motel *domain.Motel) error {
	args := m.Called(ctx, motel)
	return args.Error(0)
}

func (m *mockMotelCache) DeleteMotel(ctx context.Context, id domain.MotelID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMotelCache) GetApproved(ctx context.Context) ([]*domain.Motel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *mockMotelCache) SetApproved(ctx context.Context, motels []*domain.Motel) error {
	args := m.Called(ctx, motels)
	return args.Error(0)
}

func (m *mockMotelCache) InvalidateApproved(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindBySubject(ctx context.Context, subject domain.UserID) (*domain.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateContact(ctx context.Context, subject domain.UserID, name, email string) error {
	args := m.Called(ctx, subject, name, email)
	return args.Error(0)
}

type mockPhotoStorage struct {
	mock.Mock
}

func (m *mockPhotoStorage) Put(ctx context.Context, fileName string, data []byte) (domain.PhotoRef, error) {
	args := m.Called(ctx, fileName, data)
	return args.Get(0).(domain.PhotoRef), args.Error(1)
}

func (m *mockPhotoStorage) URL(ctx context.Context, ref domain.PhotoRef) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *mockPhotoStorage) Remove(ctx context.Context, ref domain.PhotoRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
