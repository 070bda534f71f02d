package accounts

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/memoria-app/memoria/internal/codec"
	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/kvstore"
	"github.com/memoria-app/memoria/internal/models"
)

// UsersKey is the store key holding the encoded account collection.
const UsersKey = "users"

// KVRepository implements Repository on top of a kvstore.Store.
type KVRepository struct {
	store kvstore.Store
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]models.Account, error) {
	data, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if data == nil {
		return []models.Account{}, nil
	}
	return codec.DecodeAccounts(data)
}

func (r *KVRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			a := accounts[i].Clone()
			return &a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) FindByCredentials(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorNotFound
	}
	return account, nil
}

func (r *KVRepository) Create(ctx context.Context, account models.Account) error {
	accounts, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Email == account.Email {
			return common.ErrorAlreadyExists
		}
	}
	return r.save(ctx, append(accounts, account))
}

func (r *KVRepository) Replace(ctx context.Context, account models.Account) error {
	accounts, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Email == account.Email {
			accounts[i] = account
			return r.save(ctx, accounts)
		}
	}
	return common.ErrorNotFound
}

// save persists the whole collection as one value.
func (r *KVRepository) save(ctx context.Context, accounts []models.Account) error {
	data, err := codec.EncodeAccounts(accounts)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, UsersKey, data); err != nil {
		return fmt.Errorf("failed to persist accounts: %w", err)
	}
	return nil
}
