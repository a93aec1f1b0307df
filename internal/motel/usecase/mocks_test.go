package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// MockMotelRepository is a mock implementation of domain.MotelRepository.
type MockMotelRepository struct {
	mock.Mock
}

func (m *MockMotelRepository) Create(ctx context.Context, motel *domain.Motel) error {
	args := m.Called(ctx, motel)
	return args.Error(0)
}

func (m *MockMotelRepository) Patch(ctx context.Context, id domain.MotelID, patch domain.MotelPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockMotelRepository) UpdateStatus(ctx context.Context, id domain.MotelID, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMotelRepository) FindByID(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motel), args.Error(1)
}

func (m *MockMotelRepository) FindByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Motel, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *MockMotelRepository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Motel, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *MockMotelRepository) FindAll(ctx context.Context) ([]*domain.Motel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Motel), args.Error(1)
}

func (m *MockMotelRepository) Delete(ctx context.Context, id domain.MotelID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of domain.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindBySubject(ctx context.Context, subject domain.UserID) (*domain.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateContact(ctx context.Context, subject domain.UserID, name, email string) error {
	args := m.Called(ctx, subject, name, email)
	return args.Error(0)
}

// MockPhotoStorage is a mock implementation of domain.PhotoStorage.
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Put(ctx context.Context, fileName string, data []byte) (domain.PhotoRef, error) {
	args := m.Called(ctx, fileName, data)
	return args.Get(0).(domain.PhotoRef), args.Error(1)
}

func (m *MockPhotoStorage) URL(ctx context.Context, ref domain.PhotoRef) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) Remove(ctx context.Context, ref domain.PhotoRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendStatusChanged(toEmail, motelName string, status domain.Status) error {
	args := m.Called(toEmail, motelName, status)
	return args.Error(0)
}
