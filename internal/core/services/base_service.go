package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ports"
	"github.com/SscSPs/household_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	events ports.EventPublisher
	now    func() time.Time
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithEventPublisher publishes committed ledger events through p.
func WithEventPublisher(p ports.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.events = p
	}
}

// WithClock overrides the time source used for audit fields and budget periods.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// publish emits an event after commit. Delivery failures are logged and never undo the write.
func (s *BaseService) publish(ctx context.Context, event domain.LedgerEvent) {
	if s.events == nil {
		return
	}
	event.OccurredAt = s.clock()
	if err := s.events.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event", slog.String("event", string(event.Type)))
	}
}

// storageFailure collapses an unexpected repository error into ErrStorage.
func storageFailure(op string, err error) error {
	if errors.Is(err, apperrors.ErrStorage) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStorage, op, err)
}

// passThrough keeps err when it matches one of the expected sentinels and
// reports anything else as a storage failure.
func passThrough(op string, err error, expected ...error) error {
	for _, sentinel := range expected {
		if errors.Is(err, sentinel) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return storageFailure(op, err)
}
