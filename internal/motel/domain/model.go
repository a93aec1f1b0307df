package domain

import "time"

// MotelID identifies a stored motel record.
type MotelID string

// UserID is the identity-provider subject of a user. It is the owner
// reference on motels and is trusted as-is, never validated against the
// users collection.
type UserID string

// PhotoRef is the opaque reference handed back by the blob store for an
// uploaded photo. Only the reference is persisted; URLs are resolved on read.
type PhotoRef string

type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleUser:
		return true
	}
	return false
}

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPremium
}

// PhotoQuota is the maximum number of photos a motel on this plan may hold.
// Unknown plans fall back to the free tier limit.
func (p Plan) PhotoQuota() int {
	switch p {
	case PlanPremium:
		return 10
	default:
		return 3
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaused   Status = "paused"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusPaused:
		return true
	}
	return false
}

// Location is a point on the map plus the human-readable address shown in
// the listing.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// PricingPeriods holds the per-stay price labels. Values are free text
// ("R$ 80", "consultar"); an empty string means the period is not offered.
type PricingPeriods struct {
	TwoHours    string
	FourHours   string
	TwelveHours string
}

// User mirrors the identity-provider record. Created on first authenticated
// contact, patched when name or email drift, never deleted.
type User struct {
	ID        string
	Subject   UserID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

type Motel struct {
	ID          MotelID
	OwnerID     UserID
	Name        string
	Description string
	Plan        Plan
	Status      Status
	Location    Location
	Phone       string
	WhatsApp    string
	TripAdvisor string
	Hours       string
	Periods     *PricingPeriods
	Services    []string
	Accessories []string
	Photos      []PhotoRef
	CreatedAt   time.Time
}

// PhotoQuota returns the photo limit implied by the motel's current plan.
// The limit applies at admission time only; a downgrade does not shrink an
// already-uploaded photo list.
func (m *Motel) PhotoQuota() int {
	return m.Plan.PhotoQuota()
}

// HasPhoto reports whether ref is in the motel's photo list.
func (m *Motel) HasPhoto(ref PhotoRef) bool {
	for _, p := range m.Photos {
		if p == ref {
			return true
		}
	}
	return false
}

// MotelPatch is a partial update. Nil fields are left untouched. Status is
// deliberately absent: status transitions go through their own admin-only
// operation.
type MotelPatch struct {
	Name        *string
	Description *string
	Plan        *Plan
	Location    *Location
	Phone       *string
	WhatsApp    *string
	TripAdvisor *string
	Hours       *string
	Periods     *PricingPeriods
	Services    *[]string
	Accessories *[]string
	Photos      *[]PhotoRef
}
