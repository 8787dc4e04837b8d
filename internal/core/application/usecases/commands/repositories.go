// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRequestRepoFactory provides access to the delivery request
	// repository within a transaction.
	DeliveryRequestRepoFactory interface {
		DeliveryRequestRepository() ports.DeliveryRequestRepository
	}

	// UoW manages transactions for delivery request operations.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.DeliveryRequestRepository()
	//   // ... perform operations
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRequestRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
