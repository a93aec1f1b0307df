package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

// Mailer notifies a motel owner about moderation decisions. A nil Mailer
// disables notifications.
type Mailer interface {
	SendStatusChanged(toEmail, motelName string, status domain.Status) error
}

// CreateMotelInput carries the owner-supplied fields of a new motel.
// Status and owner are never caller-controlled: every motel starts pending,
// owned by the authenticated subject.
type CreateMotelInput struct {
	Name        string
	Description string
	Plan        domain.Plan
	Location    domain.Location
	Phone       string
	WhatsApp    string
	TripAdvisor string
	Hours       string
	Periods     *domain.PricingPeriods
	Services    []string
	Accessories []string
}

type MotelUsecase struct {
	motels  domain.MotelRepository
	users   domain.UserRepository
	storage domain.PhotoStorage
	mailer  Mailer
	logger  *logger.Logger
}

func NewMotelUsecase(
	motels domain.MotelRepository,
	users domain.UserRepository,
	storage domain.PhotoStorage,
	mailer Mailer,
	log *logger.Logger,
) *MotelUsecase {
	return &MotelUsecase{
		motels:  motels,
		users:   users,
		storage: storage,
		mailer:  mailer,
		logger:  log,
	}
}

// resolveActor turns a token identity into an actor with the role stored on
// the user record. A caller seen before their first profile sync simply gets
// the default role.
func resolveActor(ctx context.Context, users domain.UserRepository, identity *domain.Identity) (domain.Actor, error) {
	if identity == nil || identity.Subject == "" {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	role := domain.RoleUser
	user, err := users.FindBySubject(ctx, identity.Subject)
	switch {
	case err == nil:
		if user.Role.Valid() {
			role = user.Role
		}
	case errors.Is(err, domain.ErrUserNotFound):
		// keep the default role
	default:
		return domain.Actor{}, err
	}
	return domain.Actor{Subject: identity.Subject, Role: role}, nil
}

func (uc *MotelUsecase) Create(ctx context.Context, identity *domain.Identity, input CreateMotelInput) (*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !input.Plan.Valid() {
		return nil, fmt.Errorf("%w: unknown plan %q", domain.ErrInvalidInput, input.Plan)
	}

	motel := &domain.Motel{
		OwnerID:     actor.Subject,
		Name:        input.Name,
		Description: input.Description,
		Plan:        input.Plan,
		Status:      domain.StatusPending,
		Location:    input.Location,
		Phone:       input.Phone,
		WhatsApp:    input.WhatsApp,
		TripAdvisor: input.TripAdvisor,
		Hours:       input.Hours,
		Periods:     input.Periods,
		Services:    input.Services,
		Accessories: input.Accessories,
		Photos:      []domain.PhotoRef{},
		CreatedAt:   time.Now().UTC(),
	}
	if motel.Services == nil {
		motel.Services = []string{}
	}
	if motel.Accessories == nil {
		motel.Accessories = []string{}
	}

	if err := uc.motels.Create(ctx, motel); err != nil {
		uc.logger.Error("MotelUsecase.Create: repository create failed", "owner", string(actor.Subject), "error", err.Error())
		return nil, err
	}
	uc.logger.Info("MotelUsecase.Create: motel created", "motel_id", string(motel.ID), "owner", string(actor.Subject))
	return motel, nil
}

func (uc *MotelUsecase) Update(ctx context.Context, identity *domain.Identity, id domain.MotelID, patch domain.MotelPatch) (*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}

	motel, err := uc.motels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(motel) {
		uc.logger.Warn("MotelUsecase.Update: forbidden",
			"motel_id", string(id), "owner", string(motel.OwnerID), "subject", string(actor.Subject))
		return nil, domain.ErrUnauthorized
	}
	if patch.Plan != nil && !patch.Plan.Valid() {
		return nil, fmt.Errorf("%w: unknown plan %q", domain.ErrInvalidInput, *patch.Plan)
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}

	if err := uc.motels.Patch(ctx, id, patch); err != nil {
		uc.logger.Error("MotelUsecase.Update: repository patch failed", "motel_id", string(id), "error", err.Error())
		return nil, err
	}
	return uc.motels.FindByID(ctx, id)
}

// ChangeStatus moves a motel between pending, approved and paused. Any
// transition between the three states is legal; the operation is admin-only,
// including for the motel's own owner.
func (uc *MotelUsecase) ChangeStatus(ctx context.Context, identity *domain.Identity, id domain.MotelID, status domain.Status) (*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		uc.logger.Warn("MotelUsecase.ChangeStatus: non-admin caller", "motel_id", string(id), "subject", string(actor.Subject))
		return nil, domain.ErrUnauthorized
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	motel, err := uc.motels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.motels.UpdateStatus(ctx, id, status); err != nil {
		uc.logger.Error("MotelUsecase.ChangeStatus: repository update failed", "motel_id", string(id), "error", err.Error())
		return nil, err
	}
	motel.Status = status

	uc.notifyOwner(ctx, motel)

	uc.logger.Info("MotelUsecase.ChangeStatus: status updated",
		"motel_id", string(id), "status", string(status), "admin", string(actor.Subject))
	return motel, nil
}

// notifyOwner emails the owner about the new status. Failures only warn:
// moderation must not depend on SMTP.
func (uc *MotelUsecase) notifyOwner(ctx context.Context, motel *domain.Motel) {
	if uc.mailer == nil {
		return
	}
	owner, err := uc.users.FindBySubject(ctx, motel.OwnerID)
	if err != nil {
		uc.logger.Warn("MotelUsecase.notifyOwner: owner lookup failed", "motel_id", string(motel.ID), "error", err.Error())
		return
	}
	if err := uc.mailer.SendStatusChanged(owner.Email, motel.Name, motel.Status); err != nil {
		uc.logger.Warn("MotelUsecase.notifyOwner: mail send failed", "motel_id", string(motel.ID), "error", err.Error())
	}
}

// Delete removes a motel and releases its photo blobs. Releases run before
// the record delete and in list order; the first failure aborts the whole
// operation so the record never outlives a half-released photo set silently.
// Removing an already-absent blob counts as success, so a retried delete
// converges.
func (uc *MotelUsecase) Delete(ctx context.Context, identity *domain.Identity, id domain.MotelID) error {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return err
	}

	motel, err := uc.motels.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanMutate(motel) {
		uc.logger.Warn("MotelUsecase.Delete: forbidden",
			"motel_id", string(id), "owner", string(motel.OwnerID), "subject", string(actor.Subject))
		return domain.ErrUnauthorized
	}

	for _, ref := range motel.Photos {
		if err := uc.storage.Remove(ctx, ref); err != nil {
			uc.logger.Error("MotelUsecase.Delete: blob release failed, aborting delete",
				"motel_id", string(id), "ref", string(ref), "error", err.Error())
			return fmt.Errorf("release photo %s: %w", ref, err)
		}
	}

	if err := uc.motels.Delete(ctx, id); err != nil {
		uc.logger.Error("MotelUsecase.Delete: repository delete failed", "motel_id", string(id), "error", err.Error())
		return err
	}
	uc.logger.Info("MotelUsecase.Delete: motel deleted", "motel_id", string(id), "subject", string(actor.Subject))
	return nil
}

func (uc *MotelUsecase) GetByID(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	return uc.motels.FindByID(ctx, id)
}

// ListApproved returns the public directory. With an origin the result is
// ordered nearest-first; without one the repository order is kept.
func (uc *MotelUsecase) ListApproved(ctx context.Context, origin *domain.Location) ([]*domain.Motel, error) {
	motels, err := uc.motels.FindByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	domain.SortByProximity(motels, origin)
	return motels, nil
}

func (uc *MotelUsecase) ListMine(ctx context.Context, identity *domain.Identity) ([]*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}
	return uc.motels.FindByOwner(ctx, actor.Subject)
}

// ListAll is the moderation view over every motel in any status.
func (uc *MotelUsecase) ListAll(ctx context.Context, identity *domain.Identity) ([]*domain.Motel, error) {
	actor, err := resolveActor(ctx, uc.users, identity)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.motels.FindAll(ctx)
}
