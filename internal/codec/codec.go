// Package codec serializes account records to and from the byte values held
// in the key-value store. Decoding validates shape: a corrupted value must
// surface as an error, because silently substituting an empty default would
// let the next write destroy user data.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/models"
)

// EncodeAccounts renders the canonical account collection as a single value.
func EncodeAccounts(accounts []models.Account) ([]byte, error) {
	b, err := json.Marshal(accounts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}
	return b, nil
}

// DecodeAccounts parses a stored collection value. Malformed input fails with
// common.ErrorDecode; an absent key is the caller's case and never reaches
// the codec.
func DecodeAccounts(data []byte) ([]models.Account, error) {
	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", common.ErrorDecode, err)
	}
	for i := range accounts {
		if err := validate(accounts[i]); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// EncodeAccount renders a single account, used for the session record.
func EncodeAccount(account models.Account) ([]byte, error) {
	b, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account: %w", err)
	}
	return b, nil
}

// DecodeAccount parses a stored single-account value.
func DecodeAccount(data []byte) (*models.Account, error) {
	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("%w: account: %v", common.ErrorDecode, err)
	}
	if err := validate(account); err != nil {
		return nil, err
	}
	return &account, nil
}

func validate(a models.Account) error {
	if a.Email == "" {
		return fmt.Errorf("%w: account without email", common.ErrorDecode)
	}
	seen := make(map[string]struct{}, len(a.Posts))
	for _, p := range a.Posts {
		if p.ID == "" || p.URI == "" {
			return fmt.Errorf("%w: account %q: post without id or uri", common.ErrorDecode, a.Email)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: account %q: duplicate post id %q", common.ErrorDecode, a.Email, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
