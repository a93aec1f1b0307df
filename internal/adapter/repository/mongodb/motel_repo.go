package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

type MotelRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMotelRepository(db *mongo.Database, log *logger.Logger) *MotelRepository {
	return &MotelRepository{
		collection: db.Collection("motels"),
		logger:     log,
	}
}

// EnsureIndexes creates the by-owner and by-status indexes the queries
// depend on. Safe to call on every startup.
func (r *MotelRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}

func (r *MotelRepository) Create(ctx context.Context, motel *domain.Motel) error {
	doc, err := toMotelDocument(motel)
	if err != nil {
		return fmt.Errorf("failed to prepare motel for database: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("MotelRepository.Create: InsertOne failed", "owner", string(motel.OwnerID), "error", err.Error())
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated motel ID")
	}
	motel.ID = domain.MotelID(oid.Hex())
	return nil
}

// Patch applies only the fields set on the patch, mirroring the document
// store's partial-update primitive. Absent fields are left untouched.
func (r *MotelRepository) Patch(ctx context.Context, id domain.MotelID, patch domain.MotelPatch) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrMotelNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Plan != nil {
		set["plan"] = string(*patch.Plan)
	}
	if patch.Location != nil {
		set["location"] = toLocationDocument(*patch.Location)
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.WhatsApp != nil {
		set["whatsapp"] = *patch.WhatsApp
	}
	if patch.TripAdvisor != nil {
		set["tripadvisor"] = *patch.TripAdvisor
	}
	if patch.Hours != nil {
		set["hours"] = *patch.Hours
	}
	if patch.Periods != nil {
		set["periods"] = toPeriodsDocument(patch.Periods)
	}
	if patch.Services != nil {
		set["services"] = *patch.Services
	}
	if patch.Accessories != nil {
		set["accessories"] = *patch.Accessories
	}
	if patch.Photos != nil {
		set["photos"] = toPhotoStrings(*patch.Photos)
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		r.logger.Error("MotelRepository.Patch: UpdateByID failed", "motel_id", string(id), "error", err.Error())
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMotelNotFound
	}
	return nil
}

func (r *MotelRepository) UpdateStatus(ctx context.Context, id domain.MotelID, status domain.Status) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrMotelNotFound
	}
	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		r.logger.Error("MotelRepository.UpdateStatus: UpdateByID failed", "motel_id", string(id), "error", err.Error())
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMotelNotFound
	}
	return nil
}

func (r *MotelRepository) FindByID(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, domain.ErrMotelNotFound
	}

	var doc motelDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMotelNotFound
		}
		r.logger.Error("MotelRepository.FindByID: FindOne failed", "motel_id", string(id), "error", err.Error())
		return nil, err
	}
	return toDomainMotel(&doc), nil
}

func (r *MotelRepository) FindByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Motel, error) {
	return r.find(ctx, bson.M{"ownerId": string(owner)},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// FindByStatus keeps insertion order, which is the "native" order proximity
// ranking falls back to when the caller has no location.
func (r *MotelRepository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Motel, error) {
	return r.find(ctx, bson.M{"status": string(status)},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (r *MotelRepository) FindAll(ctx context.Context) ([]*domain.Motel, error) {
	return r.find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MotelRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Motel, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("MotelRepository.find: Find failed", "error", err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*motelDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("MotelRepository.find: cursor decode failed", "error", err.Error())
		return nil, err
	}
	return toDomainMotels(docs), nil
}

func (r *MotelRepository) Delete(ctx context.Context, id domain.MotelID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrMotelNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("MotelRepository.Delete: DeleteOne failed", "motel_id", string(id), "error", err.Error())
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMotelNotFound
	}
	return nil
}
