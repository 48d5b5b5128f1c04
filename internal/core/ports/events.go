package ports

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// EventPublisher delivers committed ledger events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
	Close() error
}
