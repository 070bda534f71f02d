package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/models"
	"github.com/memoria-app/memoria/internal/services"
)

var errNotLoggedIn = errors.New("not logged in")

// requireLogin guards commands that operate on the current account.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return errNotLoggedIn
	}
	return nil
}

// List renders the gallery, newest post first.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(a.current.Posts) == 0 {
		fmt.Println("No photos yet.")
		return nil
	}
	for _, p := range a.current.Posts {
		marker := " "
		if a.current.HasLiked(p.ID) {
			marker = "*"
		}
		caption := p.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		fmt.Printf("%s %s  %s\n    %s\n", marker, p.ID, caption, p.URI)
	}
	return nil
}

// AddPhoto imports the image at the given path and prepends a new post.
func (a *App) AddPhoto(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: add <path>")
		return nil
	}

	uri, err := a.picker.Pick(args[0])
	if err != nil {
		fmt.Println("Could not import image:", err)
		return err
	}

	post := models.Post{ID: models.NewPostID(), URI: uri}
	account, err := a.core.Apply(ctx, a.current.Email, services.AddPost(post))
	if err != nil {
		fmt.Println("Could not add post:", err)
		return err
	}

	a.refresh(account)
	fmt.Println("Added post", post.ID)
	return nil
}

// Caption prompts for a new caption for the identified post.
func (a *App) Caption(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: caption <id>")
		return nil
	}

	text, err := getSimpleText(a.reader, "Enter caption", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.UpdateCaption(args[0], text))
	if err != nil {
		if errors.Is(err, common.ErrorPostNotFound) {
			fmt.Println("No post with id", args[0])
		} else {
			fmt.Println("Could not update caption:", err)
		}
		return err
	}

	a.refresh(account)
	return nil
}

// Remove deletes the identified post. Removing an unknown id quietly does
// nothing, same as the original gallery.
func (a *App) Remove(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: remove <id>")
		return nil
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.RemovePost(args[0]))
	if err != nil {
		fmt.Println("Could not remove post:", err)
		return err
	}

	a.refresh(account)
	return nil
}

// Like toggles the like mark on the identified post.
func (a *App) Like(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: like <id>")
		return nil
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.ToggleLike(args[0]))
	if err != nil {
		fmt.Println("Could not toggle like:", err)
		return err
	}

	a.refresh(account)
	return nil
}

// Favorite toggles the identified post in the favorites list.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: fav <id>")
		return nil
	}

	account, err := a.core.Apply(ctx, a.current.Email, services.ToggleFavorite(args[0]))
	if err != nil {
		fmt.Println("Could not toggle favorite:", err)
		return err
	}

	a.refresh(account)
	return nil
}
