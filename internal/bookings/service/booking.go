package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/internal/bookings/repository"
	"dreamshoots/internal/bookings/validator"
	"dreamshoots/internal/events"
	"dreamshoots/pkg/config"
	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher *events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	booking := &model.Booking{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Phone:           input.Phone,
		PreferredDate:   input.PreferredDate,
		PreferredTime:   input.PreferredTime,
		EventType:       input.EventType,
		Location:        input.Location,
		ImportantInfo:   input.ImportantInfo,
		SelectedPackage: input.SelectedPackage,
		Status:          model.StatusPending,
		CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publisher.Publish(ctx, events.BookingCreated, booking.ID, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"event_type", booking.EventType,
		"preferred_date", booking.PreferredDate,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to retrieve booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, s.cfg.BookingListLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if !model.ValidStatus(status) {
		return nil, apperrors.InvalidInput("Invalid status. Must be pending, confirmed, or completed")
	}

	booking, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking status", err)
	}

	s.publisher.Publish(ctx, events.BookingStatusChanged, booking.ID, booking)

	s.cfg.Log.Info("Booking status updated", "id", id, "status", status)
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.publisher.Publish(ctx, events.BookingDeleted, id, map[string]string{"id": id})

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}
