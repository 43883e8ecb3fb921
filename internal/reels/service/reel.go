package service

import (
	"context"
	"errors"
	"time"

	"dreamshoots/internal/events"
	reelserrors "dreamshoots/internal/reels/errors"
	"dreamshoots/internal/reels/repository"
	"dreamshoots/pkg/config"
	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReelService interface {
	Create(ctx context.Context, input *model.ReelInput) (*model.Reel, error)
	GetAll(ctx context.Context) ([]*model.Reel, error)
	Delete(ctx context.Context, id string) error
}

type reelService struct {
	repo      repository.ReelRepository
	validate  *validator.Validate
	publisher *events.Publisher
	cfg       *config.Config
}

func NewReelService(repo repository.ReelRepository, publisher *events.Publisher, cfg *config.Config) ReelService {
	return &reelService{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *reelService) Create(ctx context.Context, input *model.ReelInput) (*model.Reel, error) {
	if err := s.validate.Struct(input); err != nil {
		s.cfg.Log.Warn("Reel validation failed", "error", err)
		return nil, apperrors.Validation("Reel validation failed", map[string]any{"error": "url is required"})
	}

	reel := &model.Reel{
		ID:        uuid.NewString(),
		URL:       input.URL,
		Title:     input.Title,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, reel); err != nil {
		s.cfg.Log.Error("Failed to create reel", "error", err)
		return nil, apperrors.Internal("Failed to create reel", err)
	}

	s.publisher.Publish(ctx, events.ReelCreated, reel.ID, reel)

	s.cfg.Log.Info("Reel created successfully", "id", reel.ID)
	return reel, nil
}

func (s *reelService) GetAll(ctx context.Context) ([]*model.Reel, error) {
	reels, err := s.repo.FindAll(ctx, s.cfg.ReelListLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to list reels", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reels", err)
	}

	if reels == nil {
		reels = []*model.Reel{}
	}
	return reels, nil
}

func (s *reelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reel ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reelserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reel", id)
		}
		s.cfg.Log.Error("Failed to delete reel", "id", id, "error", err)
		return apperrors.Internal("Failed to delete reel", err)
	}

	s.publisher.Publish(ctx, events.ReelDeleted, id, map[string]string{"id": id})

	s.cfg.Log.Info("Reel deleted successfully", "id", id)
	return nil
}
