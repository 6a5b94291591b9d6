// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
// Repositories obtained from the same factory share atomicity: either every
// write in the callback commits, or none do.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PetRepo() PetRepository
	AdoptionRepo() AdoptionRepository
	NotificationRepo() NotificationRepository
}

// TransactionManager runs a unit of work inside a single database transaction.
// If fn returns an error the transaction is rolled back and the error is
// returned unchanged, so no partial write ever persists.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
