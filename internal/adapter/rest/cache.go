package rest

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// MotelCache is the read-through cache the handlers consult before hitting
// the repository. *cache.MotelCache satisfies it; its methods tolerate a nil
// receiver, so a nil pointer inside the interface is a no-op.
type MotelCache interface {
	GetMotel(ctx context.Context, id domain.MotelID) (*domain.Motel, error)
	SetMotel(ctx context.Context, motel *domain.Motel) error
	DeleteMotel(ctx context.Context, id domain.MotelID) error
	GetApproved(ctx context.Context) ([]*domain.Motel, error)
	SetApproved(ctx context.Context, motels []*domain.Motel) error
	InvalidateApproved(ctx context.Context) error
}
