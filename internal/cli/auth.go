package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/memoria-app/memoria/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account. On
// success the new account is logged in immediately, matching the behavior of
// the registration screen.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.Register(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			fmt.Println("An account with that email already exists.")
		case errors.Is(err, common.ErrorInvalidInput):
			fmt.Println("Email and password must not be empty.")
		default:
			fmt.Println("Registration failed:", err)
		}
		return err
	}

	a.refresh(account)
	fmt.Println("Welcome to Memoria,", account.Email)
	return nil
}

// Login prompts for credentials and authenticates against the local account
// collection.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("Incorrect email or password.")
		} else {
			fmt.Println("Login failed:", err)
		}
		return err
	}

	a.refresh(account)
	fmt.Println("Logged in as", account.Email)
	return nil
}

// Logout clears the stored session and the in-memory account copy.
func (a *App) Logout(ctx context.Context) error {
	if err := a.core.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.refresh(nil)
	fmt.Println("Logged out.")
	return nil
}
