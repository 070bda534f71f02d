// Package services implements the consistency layer between the canonical
// account collection and the denormalized session record. Every
// state-changing action in the application goes through the Coordinator.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/logging"
	"github.com/memoria-app/memoria/internal/models"
	"github.com/memoria-app/memoria/internal/repositories/accounts"
	"github.com/memoria-app/memoria/internal/repositories/session"
)

// Mutation computes a new account value from the current one. Implementations
// must be pure: no I/O and no modification of the input value.
type Mutation func(models.Account) (models.Account, error)

// Coordinator applies every mutation to both the account collection and the
// session record, collection first.
//
// The collection is the durable source of truth; the session is a rebuildable
// mirror. If the process dies between the two writes, the change is already
// durable and the stale mirror is repaired on the next login. The reverse
// order would silently lose the change on restart, because the next login
// reads the collection, not the session.
type Coordinator struct {
	accounts accounts.Repository
	session  session.Repository
	log      logging.Logger

	// Serializes all mutations. Overlapping calls would race their loads
	// against each other's persists and silently drop one change.
	mu sync.Mutex
}

// NewCoordinator wires the coordinator to its repositories.
func NewCoordinator(accounts accounts.Repository, session session.Repository, log logging.Logger) *Coordinator {
	return &Coordinator{accounts: accounts, session: session, log: log}
}

// Apply loads the account identified by email, runs the mutation on it,
// persists the updated collection, and only after that write succeeds
// refreshes the session record. The new account value is returned to the
// caller for re-rendering.
//
// Each write is whole-value, so a failed Apply is always safe to retry with
// the same arguments.
func (c *Coordinator) Apply(ctx context.Context, email string, mutate Mutation) (*models.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	updated, err := mutate(*current)
	if err != nil {
		return nil, err
	}
	if updated.Email != email {
		panic(fmt.Sprintf("services: mutation changed account email %q to %q", email, updated.Email))
	}

	if err := c.accounts.Replace(ctx, updated); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// The entry was located moments ago; losing it now means the
			// collection and our view of it have diverged.
			panic(fmt.Sprintf("services: account %q vanished during mutation", email))
		}
		return nil, err
	}

	if err := c.session.Set(ctx, updated); err != nil {
		// The change itself is durable; only the mirror is stale now.
		c.log.Error(ctx, "session refresh failed after collection write", "email", email, "error", err)
		return nil, err
	}

	c.log.Debug(ctx, "mutation applied", "email", email, "posts", len(updated.Posts))
	return &updated, nil
}

// Register creates a new account and logs it in. The password is stored as a
// bcrypt hash. The session is written only after the account is durable in
// the collection, for the same ordering reason as Apply.
func (c *Coordinator) Register(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		Email:        email,
		PasswordHash: string(hash),
		Theme:        models.ThemeLight,
		Favorites:    []string{},
		LikedPosts:   []string{},
		Posts:        []models.Post{},
	}

	if err := c.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	if err := c.session.Set(ctx, account); err != nil {
		return nil, err
	}

	c.log.Info(ctx, "account registered", "email", email)
	return &account, nil
}

// Login verifies credentials against the collection and points the session at
// the matching account. Because the account value comes from a fresh read of
// the collection, this also repairs a session record left stale by an
// interruption between the two writes of an earlier mutation.
func (c *Coordinator) Login(ctx context.Context, email, password string) (*models.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account, err := c.accounts.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(ctx, *account); err != nil {
		return nil, err
	}

	c.log.Info(ctx, "login", "email", email)
	return account, nil
}

// Logout clears the session record. The account collection is not touched.
func (c *Coordinator) Logout(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "logout")
	return nil
}

// Current returns the session record, or common.ErrorNotFound when logged out.
func (c *Coordinator) Current(ctx context.Context) (*models.Account, error) {
	return c.session.Get(ctx)
}
