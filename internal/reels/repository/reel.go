package repository

import (
	"context"
	"fmt"
	"time"

	reelserrors "dreamshoots/internal/reels/errors"
	"dreamshoots/pkg/config"
	"dreamshoots/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "reels"
)

var excludeObjectID = bson.M{"_id": 0}

type mongoReelRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type ReelRepository interface {
	Create(ctx context.Context, reel *model.Reel) error
	FindAll(ctx context.Context, limit int) ([]*model.Reel, error)
	Delete(ctx context.Context, id string) error
}

func NewMongoReelRepository(cfg *config.Config) ReelRepository {
	db := cfg.Client.Mongo.Database(cfg.DatabaseName)
	return &mongoReelRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReelRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoReelRepository) Create(ctx context.Context, reel *model.Reel) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, reel); err != nil {
		return fmt.Errorf("failed to create reel: %w", err)
	}

	return nil
}

func (r *mongoReelRepository) FindAll(ctx context.Context, limit int) ([]*model.Reel, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(excludeObjectID)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reels: %w", err)
	}
	defer cursor.Close(ctx)

	var reels []*model.Reel
	if err = cursor.All(ctx, &reels); err != nil {
		return nil, fmt.Errorf("failed to decode reels: %w", err)
	}

	return reels, nil
}

func (r *mongoReelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reel: %w", err)
	}

	if result.DeletedCount == 0 {
		return reelserrors.ErrNotFound
	}

	return nil
}
