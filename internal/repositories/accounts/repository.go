package accounts

import (
	"context"

	"github.com/memoria-app/memoria/internal/models"
)

// Repository owns the canonical account collection.
//
// Every mutating operation persists the whole collection as one value: the
// underlying store has no partial updates, so write amplification is
// O(total accounts) per mutation. That is acceptable for a single local user
// base, and a stated limit of this design.
type Repository interface {
	// List returns all registered accounts, an empty slice when there are none.
	List(ctx context.Context) ([]models.Account, error)

	// FindByEmail returns the account with the given email, or
	// common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// FindByCredentials returns the account whose email matches exactly and
	// whose stored password hash verifies against password, or
	// common.ErrorNotFound on any mismatch.
	FindByCredentials(ctx context.Context, email, password string) (*models.Account, error)

	// Create appends a new account and persists the collection. Fails with
	// common.ErrorAlreadyExists when the email is taken, leaving the
	// collection unchanged.
	Create(ctx context.Context, account models.Account) error

	// Replace overwrites the stored account with the same email and persists
	// the collection. Fails with common.ErrorNotFound when no such account
	// exists; callers treat that as an internal bug, not a user error.
	Replace(ctx context.Context, account models.Account) error
}
