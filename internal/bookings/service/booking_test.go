package service

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/internal/bookings/validator"
	"dreamshoots/internal/events"
	"dreamshoots/pkg/config"
	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"
)

// Mock repository for testing
type mockBookingRepository struct {
	createFunc       func(ctx context.Context, booking *model.Booking) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc      func(ctx context.Context, limit int) ([]*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id string, status string) (*model.Booking, error)
	deleteFunc       func(ctx context.Context, id string) error

	updateStatusCalls int
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	m.updateStatusCalls++
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return bookingserrors.ErrNotFound
}

func newTestService(repo *mockBookingRepository) BookingService {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})

	cfg := &config.Config{
		Log:              log,
		BookingListLimit: 1000,
	}

	return NewBookingService(repo, validator.NewBookingValidator(log), events.NewPublisher(nil, log), cfg)
}

func validInput() *model.BookingInput {
	return &model.BookingInput{
		Name:          "Test User",
		Phone:         "+919876543210",
		PreferredDate: "2025-01-02",
		PreferredTime: "14:30",
		EventType:     "Wedding",
	}
}

func TestCreate_GeneratesIDStatusAndTimestamp(t *testing.T) {
	var stored *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			stored = booking
			return nil
		},
	}
	svc := newTestService(repo)

	before := time.Now().UTC().Truncate(time.Millisecond)
	booking, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected a generated id")
	}
	if booking.Status != model.StatusPending {
		t.Errorf("expected status %q, got %q", model.StatusPending, booking.Status)
	}
	if booking.CreatedAt.Before(before) {
		t.Errorf("created_at %s is earlier than request time %s", booking.CreatedAt, before)
	}
	if stored == nil || stored.ID != booking.ID {
		t.Error("expected the same record persisted and returned")
	}
}

func TestCreate_DistinctIDs(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error { return nil },
	}
	svc := newTestService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		booking, err := svc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[booking.ID] {
			t.Fatalf("duplicate id issued: %s", booking.ID)
		}
		seen[booking.ID] = true
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			t.Fatal("repository must not be called for invalid input")
			return nil
		},
	}
	svc := newTestService(repo)

	input := validInput()
	input.Phone = ""

	_, err := svc.Create(context.Background(), input)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected code %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
}

func TestUpdateStatus_InvalidValueLeavesStoreUntouched(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	for _, status := range []string{"invalid_status", "cancelled", "PENDING", ""} {
		_, err := svc.UpdateStatus(context.Background(), "some-id", status)
		if err == nil {
			t.Fatalf("expected error for status %q", status)
		}
		appErr := apperrors.AsAppError(err)
		if appErr.Code != apperrors.CodeInvalidInput {
			t.Errorf("status %q: expected code %s, got %s", status, apperrors.CodeInvalidInput, appErr.Code)
		}
	}

	if repo.updateStatusCalls != 0 {
		t.Errorf("expected no repository calls for invalid statuses, got %d", repo.updateStatusCalls)
	}
}

func TestUpdateStatus_ValidTransitions(t *testing.T) {
	repo := &mockBookingRepository{
		updateStatusFunc: func(ctx context.Context, id string, status string) (*model.Booking, error) {
			return &model.Booking{ID: id, Status: status}, nil
		},
	}
	svc := newTestService(repo)

	// Any-to-any transitions are permitted, including completed back to pending.
	for _, status := range []string{"confirmed", "completed", "pending"} {
		booking, err := svc.UpdateStatus(context.Background(), "some-id", status)
		if err != nil {
			t.Fatalf("status %q: unexpected error: %v", status, err)
		}
		if booking.Status != status {
			t.Errorf("expected status %q, got %q", status, booking.Status)
		}
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "missing-id", "confirmed")
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), "missing-id")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestGetAll_UsesConfiguredLimitAndNeverReturnsNil(t *testing.T) {
	var receivedLimit int
	repo := &mockBookingRepository{
		findAllFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
			receivedLimit = limit
			return nil, nil
		},
	}
	svc := newTestService(repo)

	bookings, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receivedLimit != 1000 {
		t.Errorf("expected limit 1000, got %d", receivedLimit)
	}
	if bookings == nil {
		t.Error("expected an empty slice, not nil")
	}
}

func TestGetByID_InfrastructureFault(t *testing.T) {
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), "some-id")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected infrastructure fault to surface as %s, got %s", apperrors.CodeInternal, appErr.Code)
	}
}
