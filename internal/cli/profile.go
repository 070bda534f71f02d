package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/memoria-app/memoria/internal/models"
	"github.com/memoria-app/memoria/internal/services"
)

// Profile renders the profile card of the logged-in account.
func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name := a.current.Name
	if name == "" {
		name = "(not set)"
	}
	bio := a.current.Bio
	if bio == "" {
		bio = "(not set)"
	}
	picture := a.current.ProfilePicture
	if picture == "" {
		picture = "(none)"
	}

	fmt.Println("Name:   ", name)
	fmt.Println("Bio:    ", bio)
	fmt.Println("Email:  ", a.current.Email)
	fmt.Println("Picture:", picture)
	fmt.Println("Theme:  ", a.current.Theme)
	fmt.Println("Posts:  ", len(a.current.Posts))
	return nil
}

// EditProfile prompts for a new name and bio and saves them.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Enter bio", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.UpdateProfile(name, bio))
	if err != nil {
		fmt.Println("Could not save profile:", err)
		return err
	}

	a.refresh(account)
	fmt.Println("Profile updated.")
	return nil
}

// SetPicture imports the image at the given path and makes it the profile
// picture.
func (a *App) SetPicture(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: picture <path>")
		return nil
	}

	uri, err := a.picker.Pick(args[0])
	if err != nil {
		fmt.Println("Could not import image:", err)
		return err
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.SetProfilePicture(uri))
	if err != nil {
		fmt.Println("Could not update picture:", err)
		return err
	}

	a.refresh(account)
	fmt.Println("Profile picture updated.")
	return nil
}

// ToggleTheme flips the stored color-scheme preference.
func (a *App) ToggleTheme(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	next := models.ThemeDark
	if a.current.Theme == models.ThemeDark {
		next = models.ThemeLight
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.SetTheme(next))
	if err != nil {
		fmt.Println("Could not switch theme:", err)
		return err
	}

	a.refresh(account)
	fmt.Println("Theme:", account.Theme)
	return nil
}
