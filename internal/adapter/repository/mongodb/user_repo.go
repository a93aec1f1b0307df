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

type UserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewUserRepository(db *mongo.Database, log *logger.Logger) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
		logger:     log,
	}
}

// EnsureIndexes creates the unique by-subject index; one local record per
// identity-provider subject.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc, err := toUserDocument(user)
	if err != nil {
		return fmt.Errorf("failed to prepare user for database: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Two first-contact syncs raced; the record exists, which is
			// all the caller needs.
			r.logger.Warn("UserRepository.Create: subject already stored", "subject", string(user.Subject))
			existing, findErr := r.FindBySubject(ctx, user.Subject)
			if findErr != nil {
				return findErr
			}
			*user = *existing
			return nil
		}
		r.logger.Error("UserRepository.Create: InsertOne failed", "subject", string(user.Subject), "error", err.Error())
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *UserRepository) FindBySubject(ctx context.Context, subject domain.UserID) (*domain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"userId": string(subject)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("UserRepository.FindBySubject: FindOne failed", "subject", string(subject), "error", err.Error())
		return nil, err
	}
	return toDomainUser(&doc), nil
}

func (r *UserRepository) UpdateContact(ctx context.Context, subject domain.UserID, name, email string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": string(subject)},
		bson.M{"$set": bson.M{"name": name, "email": email}},
	)
	if err != nil {
		r.logger.Error("UserRepository.UpdateContact: UpdateOne failed", "subject", string(subject), "error", err.Error())
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
