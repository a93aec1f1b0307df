package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// Field names match the documents written by the previous implementation of
// this directory, so an existing database keeps working unmigrated.

type locationDocument struct {
	Lat     float64 `bson:"lat"`
	Lng     float64 `bson:"lng"`
	Address string  `bson:"address"`
}

type periodsDocument struct {
	TwoHours    string `bson:"twoHours,omitempty"`
	FourHours   string `bson:"fourHours,omitempty"`
	TwelveHours string `bson:"twelveHours,omitempty"`
}

type motelDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"ownerId"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Plan        string             `bson:"plan"`
	Status      string             `bson:"status"`
	Location    locationDocument   `bson:"location"`
	Phone       string             `bson:"phone,omitempty"`
	WhatsApp    string             `bson:"whatsapp,omitempty"`
	TripAdvisor string             `bson:"tripadvisor,omitempty"`
	Hours       string             `bson:"hours,omitempty"`
	Periods     *periodsDocument   `bson:"periods,omitempty"`
	Services    []string           `bson:"services"`
	Accessories []string           `bson:"accessories"`
	Photos      []string           `bson:"photos"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Subject   string             `bson:"userId"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toLocationDocument(l domain.Location) locationDocument {
	return locationDocument{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func toPeriodsDocument(p *domain.PricingPeriods) *periodsDocument {
	if p == nil {
		return nil
	}
	return &periodsDocument{
		TwoHours:    p.TwoHours,
		FourHours:   p.FourHours,
		TwelveHours: p.TwelveHours,
	}
}

func toPhotoStrings(refs []domain.PhotoRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, string(r))
	}
	return out
}

func toPhotoRefs(raw []string) []domain.PhotoRef {
	out := make([]domain.PhotoRef, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.PhotoRef(r))
	}
	return out
}

// toMotelDocument converts the domain model for storage. An empty domain ID
// leaves the document ID at NilObjectID so InsertOne generates one; the
// repository writes the generated hex back onto the domain model.
func toMotelDocument(m *domain.Motel) (*motelDocument, error) {
	if m == nil {
		return nil, nil
	}

	var docID primitive.ObjectID
	if m.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(string(m.ID))
		if err != nil {
			return nil, fmt.Errorf("toMotelDocument: invalid ID %q: %w", m.ID, err)
		}
	}

	return &motelDocument{
		ID:          docID,
		OwnerID:     string(m.OwnerID),
		Name:        m.Name,
		Description: m.Description,
		Plan:        string(m.Plan),
		Status:      string(m.Status),
		Location:    toLocationDocument(m.Location),
		Phone:       m.Phone,
		WhatsApp:    m.WhatsApp,
		TripAdvisor: m.TripAdvisor,
		Hours:       m.Hours,
		Periods:     toPeriodsDocument(m.Periods),
		Services:    m.Services,
		Accessories: m.Accessories,
		Photos:      toPhotoStrings(m.Photos),
		CreatedAt:   m.CreatedAt,
	}, nil
}

func toDomainMotel(d *motelDocument) *domain.Motel {
	if d == nil {
		return nil
	}
	var periods *domain.PricingPeriods
	if d.Periods != nil {
		periods = &domain.PricingPeriods{
			TwoHours:    d.Periods.TwoHours,
			FourHours:   d.Periods.FourHours,
			TwelveHours: d.Periods.TwelveHours,
		}
	}
	return &domain.Motel{
		ID:          domain.MotelID(d.ID.Hex()),
		OwnerID:     domain.UserID(d.OwnerID),
		Name:        d.Name,
		Description: d.Description,
		Plan:        domain.Plan(d.Plan),
		Status:      domain.Status(d.Status),
		Location:    domain.Location{Lat: d.Location.Lat, Lng: d.Location.Lng, Address: d.Location.Address},
		Phone:       d.Phone,
		WhatsApp:    d.WhatsApp,
		TripAdvisor: d.TripAdvisor,
		Hours:       d.Hours,
		Periods:     periods,
		Services:    d.Services,
		Accessories: d.Accessories,
		Photos:      toPhotoRefs(d.Photos),
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainMotels(docs []*motelDocument) []*domain.Motel {
	motels := make([]*domain.Motel, 0, len(docs))
	for _, doc := range docs {
		motels = append(motels, toDomainMotel(doc))
	}
	return motels
}

func toUserDocument(u *domain.User) (*userDocument, error) {
	if u == nil {
		return nil, nil
	}
	var docID primitive.ObjectID
	if u.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, fmt.Errorf("toUserDocument: invalid ID %q: %w", u.ID, err)
		}
	}
	return &userDocument{
		ID:        docID,
		Subject:   string(u.Subject),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}, nil
}

func toDomainUser(d *userDocument) *domain.User {
	if d == nil {
		return nil
	}
	role := domain.Role(d.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}
	return &domain.User{
		ID:        d.ID.Hex(),
		Subject:   domain.UserID(d.Subject),
		Name:      d.Name,
		Email:     d.Email,
		Role:      role,
		CreatedAt: d.CreatedAt,
	}
}
