package usecase

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

// PhotoUpload is one file of an upload batch.
type PhotoUpload struct {
	FileName string
	Data     []byte
}

type PhotoUsecase struct {
	motels  domain.MotelRepository
	users   domain.UserRepository
	storage domain.PhotoStorage
	logger  *logger.Logger
}

func NewPhotoUsecase(
	motels domain.MotelRepository,
	users domain.UserRepository,
	storage domain.PhotoStorage,
	log *logger.Logger,
) *PhotoUsecase {
	return &PhotoUsecase{
		motels:  motels,
		users:   users,
		storage: storage,
		logger:  log,
	}
}

// Upload admits a batch of photos against the plan quota and transfers them.
// Admission is all-or-nothing: if existing+batch would exceed the quota the
// whole batch is rejected before any byte is transferred. On a mid-batch
// transfer failure the blobs uploaded so far are released best-effort and
// nothing is persisted.
func (uc *PhotoUsecase) Upload(ctx context.Context, identity *domain.Identity, id domain.MotelID, uploads []PhotoUpload) (*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: empty upload batch", domain.ErrInvalidInput)
	}

	motel, err := uc.motels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(motel) {
		uc.logger.Warn("PhotoUsecase.Upload: forbidden",
			"motel_id", string(id), "owner", string(motel.OwnerID), "subject", string(actor.Subject))
		return nil, domain.ErrUnauthorized
	}

	quota := motel.PhotoQuota()
	if len(motel.Photos)+len(uploads) > quota {
		uc.logger.Warn("PhotoUsecase.Upload: batch over quota",
			"motel_id", string(id), "existing", len(motel.Photos), "batch", len(uploads), "quota", quota)
		return nil, fmt.Errorf("%w: %d existing + %d new > %d allowed on %s plan",
			domain.ErrPhotoQuotaExceeded, len(motel.Photos), len(uploads), quota, motel.Plan)
	}

	refs := make([]domain.PhotoRef, 0, len(uploads))
	for _, up := range uploads {
		ref, err := uc.storage.Put(ctx, up.FileName, up.Data)
		if err != nil {
			uc.logger.Error("PhotoUsecase.Upload: transfer failed",
				"motel_id", string(id), "file", up.FileName, "error", err.Error())
			uc.release(ctx, refs)
			return nil, fmt.Errorf("upload %s: %w", up.FileName, err)
		}
		refs = append(refs, ref)
	}

	photos := make([]domain.PhotoRef, 0, len(motel.Photos)+len(refs))
	photos = append(photos, motel.Photos...)
	photos = append(photos, refs...)
	if err := uc.motels.Patch(ctx, id, domain.MotelPatch{Photos: &photos}); err != nil {
		uc.logger.Error("PhotoUsecase.Upload: persisting photo list failed", "motel_id", string(id), "error", err.Error())
		uc.release(ctx, refs)
		return nil, err
	}

	motel.Photos = photos
	uc.logger.Info("PhotoUsecase.Upload: batch uploaded",
		"motel_id", string(id), "count", len(refs), "total", len(photos))
	return motel, nil
}

// Remove releases one photo blob and pulls its reference from the motel.
func (uc *PhotoUsecase) Remove(ctx context.Context, identity *domain.Identity, id domain.MotelID, ref domain.PhotoRef) (*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}

	motel, err := uc.motels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(motel) {
		return nil, domain.ErrUnauthorized
	}
	if !motel.HasPhoto(ref) {
		return nil, domain.ErrPhotoNotFound
	}

	if err := uc.storage.Remove(ctx, ref); err != nil {
		uc.logger.Error("PhotoUsecase.Remove: blob release failed", "motel_id", string(id), "ref", string(ref), "error", err.Error())
		return nil, fmt.Errorf("release photo %s: %w", ref, err)
	}

	photos := make([]domain.PhotoRef, 0, len(motel.Photos)-1)
	for _, p := range motel.Photos {
		if p != ref {
			photos = append(photos, p)
		}
	}
	if err := uc.motels.Patch(ctx, id, domain.MotelPatch{Photos: &photos}); err != nil {
		return nil, err
	}
	motel.Photos = photos
	return motel, nil
}

// URLs resolves the motel's photo references to fetchable URLs for
// rendering. A reference that fails to resolve is skipped with a warning
// rather than failing the read.
func (uc *PhotoUsecase) URLs(ctx context.Context, motel *domain.Motel) []string {
	urls := make([]string, 0, len(motel.Photos))
	for _, ref := range motel.Photos {
		url, err := uc.storage.URL(ctx, ref)
		if err != nil {
			uc.logger.Warn("PhotoUsecase.URLs: resolve failed", "motel_id", string(motel.ID), "ref", string(ref), "error", err.Error())
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (uc *PhotoUsecase) release(ctx context.Context, refs []domain.PhotoRef) {
	for _, ref := range refs {
		if err := uc.storage.Remove(ctx, ref); err != nil {
			uc.logger.Warn("PhotoUsecase.release: orphan blob left behind", "ref", string(ref), "error", err.Error())
		}
	}
}
