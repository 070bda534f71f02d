package session

import (
	"context"
	"fmt"

	"github.com/memoria-app/memoria/internal/codec"
	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/kvstore"
	"github.com/memoria-app/memoria/internal/models"
)

// CurrentUserKey is the store key holding the encoded session record.
const CurrentUserKey = "currentUser"

// KVRepository implements Repository over a single key. Whole-value
// overwrite only, no merge logic.
type KVRepository struct {
	store kvstore.Store
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get(ctx context.Context) (*models.Account, error) {
	data, err := r.store.Get(ctx, CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if data == nil {
		return nil, common.ErrorNotFound
	}
	return codec.DecodeAccount(data)
}

func (r *KVRepository) Set(ctx context.Context, account models.Account) error {
	data, err := codec.EncodeAccount(account)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, CurrentUserKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
