package domain

import "context"

// MotelRepository is the persistence contract for motel records. The store
// is expected to keep by-owner and by-status indexes; single-record writes
// are assumed atomic at the storage layer.
type MotelRepository interface {
	Create(ctx context.Context, motel *Motel) error
	Patch(ctx context.Context, id MotelID, patch MotelPatch) error
	UpdateStatus(ctx context.Context, id MotelID, status Status) error
	FindByID(ctx context.Context, id MotelID) (*Motel, error)
	FindByOwner(ctx context.Context, owner UserID) ([]*Motel, error)
	FindByStatus(ctx context.Context, status Status) ([]*Motel, error)
	FindAll(ctx context.Context) ([]*Motel, error)
	Delete(ctx context.Context, id MotelID) error
}

// UserRepository stores the local mirror of identity-provider users,
// keyed by subject (unique index).
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindBySubject(ctx context.Context, subject UserID) (*User, error)
	UpdateContact(ctx context.Context, subject UserID, name, email string) error
}

// PhotoStorage is the blob-store boundary. Put transfers the bytes and
// hands back the opaque reference that gets persisted; URL resolves a
// reference to a fetchable URL for rendering; Remove releases the blob and
// treats an already-absent reference as success so deletes can be retried.
type PhotoStorage interface {
	Put(ctx context.Context, fileName string, data []byte) (PhotoRef, error)
	URL(ctx context.Context, ref PhotoRef) (string, error)
	Remove(ctx context.Context, ref PhotoRef) error
}
