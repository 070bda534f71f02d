package session

import (
	"context"

	"github.com/memoria-app/memoria/internal/models"
)

// Repository owns the single denormalized current-user record. It is a
// rebuildable mirror of one entry in the account collection, never a second
// source of truth: on any detected divergence the collection wins.
type Repository interface {
	// Get returns the current account, or common.ErrorNotFound when logged
	// out. A present-but-malformed record is a decode error, not "logged out".
	Get(ctx context.Context) (*models.Account, error)

	// Set overwrites the current-user record with the given account.
	Set(ctx context.Context, account models.Account) error

	// Clear removes the current-user record.
	Clear(ctx context.Context) error
}
