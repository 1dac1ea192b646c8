package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

const collectionTokens = "tokens"

type ResetTokenRepository struct {
	coll *mongo.Collection
}

func NewResetTokenRepository(db *mongo.Database) *ResetTokenRepository {
	return &ResetTokenRepository{coll: db.Collection(collectionTokens)}
}

type mongoResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

func (m mongoResetToken) toDomain() *domain.ResetToken {
	return &domain.ResetToken{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		TokenHash: m.Token,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

func (r *ResetTokenRepository) Create(ctx context.Context, token *domain.ResetToken) error {
	uid, ok := objectID(token.UserID)
	if !ok {
		return fmt.Errorf("insert reset token: %w", domain.ErrUserNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    uid,
		Token:     token.TokenHash,
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	token.ID = doc.ID.Hex()
	return nil
}

func (r *ResetTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	uid, ok := objectID(userID)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": uid}); err != nil {
		return fmt.Errorf("delete reset tokens: %w", err)
	}
	return nil
}

// Consume matches on digest and expiry and deletes in one round trip, so two
// concurrent redemptions of the same credential cannot both succeed.
func (r *ResetTokenRepository) Consume(ctx context.Context, tokenHash string, now time.Time) (*domain.ResetToken, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"token":      tokenHash,
		"expires_at": bson.M{"$gt": now},
	}

	var doc mongoResetToken
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the digest and owner indexes.
func (r *ResetTokenRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("tokens indexes: %w", err)
	}
	return nil
}
