package rest

import (
	"time"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
)

// Request payloads are editable drafts, deliberately disjoint from the
// persisted domain types: they load from JSON and serialize to a usecase
// input or a partial patch, never the other way round.

type LocationPayload struct {
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
	Address string  `json:"address" validate:"required"`
}

func (p LocationPayload) toDomain() domain.Location {
	return domain.Location{Lat: p.Lat, Lng: p.Lng, Address: p.Address}
}

type PeriodsPayload struct {
	TwoHours    string `json:"twoHours,omitempty"`
	FourHours   string `json:"fourHours,omitempty"`
	TwelveHours string `json:"twelveHours,omitempty"`
}

func (p *PeriodsPayload) toDomain() *domain.PricingPeriods {
	if p == nil {
		return nil
	}
	return &domain.PricingPeriods{
		TwoHours:    p.TwoHours,
		FourHours:   p.FourHours,
		TwelveHours: p.TwelveHours,
	}
}

type CreateMotelRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Plan        string          `json:"plan" validate:"required,oneof=free premium"`
	Location    LocationPayload `json:"location"`
	Phone       string          `json:"phone,omitempty"`
	WhatsApp    string          `json:"whatsapp,omitempty"`
	TripAdvisor string          `json:"tripadvisor,omitempty"`
	Hours       string          `json:"hours,omitempty"`
	Periods     *PeriodsPayload `json:"periods,omitempty"`
	Services    []string        `json:"services"`
	Accessories []string        `json:"accessories"`
}

func (r *CreateMotelRequest) toInput() usecase.CreateMotelInput {
	return usecase.CreateMotelInput{
		Name:        r.Name,
		Description: r.Description,
		Plan:        domain.Plan(r.Plan),
		Location:    r.Location.toDomain(),
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		TripAdvisor: r.TripAdvisor,
		Hours:       r.Hours,
		Periods:     r.Periods.toDomain(),
		Services:    r.Services,
		Accessories: r.Accessories,
	}
}

// UpdateMotelRequest carries only the fields the caller wants changed.
// Status is not here: transitions have their own admin-only endpoint.
type UpdateMotelRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Plan        *string          `json:"plan,omitempty" validate:"omitempty,oneof=free premium"`
	Location    *LocationPayload `json:"location,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	WhatsApp    *string          `json:"whatsapp,omitempty"`
	TripAdvisor *string          `json:"tripadvisor,omitempty"`
	Hours       *string          `json:"hours,omitempty"`
	Periods     *PeriodsPayload  `json:"periods,omitempty"`
	Services    *[]string        `json:"services,omitempty"`
	Accessories *[]string        `json:"accessories,omitempty"`
}

func (r *UpdateMotelRequest) toPatch() domain.MotelPatch {
	patch := domain.MotelPatch{
		Name:        r.Name,
		Description: r.Description,
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		TripAdvisor: r.TripAdvisor,
		Hours:       r.Hours,
		Services:    r.Services,
		Accessories: r.Accessories,
	}
	if r.Plan != nil {
		plan := domain.Plan(*r.Plan)
		patch.Plan = &plan
	}
	if r.Location != nil {
		loc := r.Location.toDomain()
		patch.Location = &loc
	}
	if r.Periods != nil {
		patch.Periods = r.Periods.toDomain()
	}
	return patch
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved paused"`
}

type MotelResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Plan        string          `json:"plan"`
	Status      string          `json:"status"`
	Location    LocationPayload `json:"location"`
	Phone       string          `json:"phone,omitempty"`
	WhatsApp    string          `json:"whatsapp,omitempty"`
	TripAdvisor string          `json:"tripadvisor,omitempty"`
	Hours       string          `json:"hours,omitempty"`
	Periods     *PeriodsPayload `json:"periods,omitempty"`
	Services    []string        `json:"services"`
	Accessories []string        `json:"accessories"`
	Photos      []string        `json:"photos"`
	PhotoURLs   []string        `json:"photoUrls"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toMotelResponse(m *domain.Motel, photoURLs []string) *MotelResponse {
	if m == nil {
		return nil
	}
	var periods *PeriodsPayload
	if m.Periods != nil {
		periods = &PeriodsPayload{
			TwoHours:    m.Periods.TwoHours,
			FourHours:   m.Periods.FourHours,
			TwelveHours: m.Periods.TwelveHours,
		}
	}
	photos := make([]string, 0, len(m.Photos))
	for _, ref := range m.Photos {
		photos = append(photos, string(ref))
	}
	if photoURLs == nil {
		photoURLs = []string{}
	}
	return &MotelResponse{
		ID:          string(m.ID),
		OwnerID:     string(m.OwnerID),
		Name:        m.Name,
		Description: m.Description,
		Plan:        string(m.Plan),
		Status:      string(m.Status),
		Location:    LocationPayload{Lat: m.Location.Lat, Lng: m.Location.Lng, Address: m.Location.Address},
		Phone:       m.Phone,
		WhatsApp:    m.WhatsApp,
		TripAdvisor: m.TripAdvisor,
		Hours:       m.Hours,
		Periods:     periods,
		Services:    m.Services,
		Accessories: m.Accessories,
		Photos:      photos,
		PhotoURLs:   photoURLs,
		CreatedAt:   m.CreatedAt,
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Subject:   string(u.Subject),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
