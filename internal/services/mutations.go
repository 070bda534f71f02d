package services

import (
	"fmt"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/models"
)

// AddPost prepends the post: the gallery is newest-first. Generating the id
// is the caller's job; a duplicate means the generator broke, so it is a
// fatal precondition violation rather than a user-facing error.
func AddPost(post models.Post) Mutation {
	return func(a models.Account) (models.Account, error) {
		if a.HasPost(post.ID) {
			panic(fmt.Sprintf("services: duplicate post id %q on account %q", post.ID, a.Email))
		}
		out := a.Clone()
		out.Posts = append([]models.Post{post}, out.Posts...)
		return out, nil
	}
}

// UpdateCaption replaces the caption of the identified post, leaving every
// other post and field unchanged. Fails with common.ErrorPostNotFound when
// the id is absent.
func UpdateCaption(postID, caption string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		for i := range out.Posts {
			if out.Posts[i].ID == postID {
				out.Posts[i].Caption = caption
				return out, nil
			}
		}
		return models.Account{}, common.ErrorPostNotFound
	}
}

// RemovePost filters the identified post out. Removing an id that is not
// present is a no-op, so a retried removal stays safe.
func RemovePost(postID string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		if !out.HasPost(postID) {
			return out, nil
		}
		filtered := make([]models.Post, 0, len(out.Posts)-1)
		for _, p := range out.Posts {
			if p.ID != postID {
				filtered = append(filtered, p)
			}
		}
		out.Posts = filtered
		return out, nil
	}
}

// UpdateProfile replaces the display name and bio, leaving posts untouched.
func UpdateProfile(name, bio string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		out.Name = name
		out.Bio = bio
		return out, nil
	}
}

// SetProfilePicture replaces the profile picture reference. The URI is
// opaque to the core.
func SetProfilePicture(uri string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		out.ProfilePicture = uri
		return out, nil
	}
}

// SetTheme stores the color-scheme preference.
func SetTheme(theme models.Theme) Mutation {
	return func(a models.Account) (models.Account, error) {
		if !theme.Valid() {
			return models.Account{}, common.ErrorInvalidInput
		}
		out := a.Clone()
		out.Theme = theme
		return out, nil
	}
}

// ToggleLike adds the post id to the account's liked list, or removes it if
// already present.
func ToggleLike(postID string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		out.LikedPosts = toggle(out.LikedPosts, postID)
		return out, nil
	}
}

// ToggleFavorite adds the post id to the account's favorites, or removes it
// if already present.
func ToggleFavorite(postID string) Mutation {
	return func(a models.Account) (models.Account, error) {
		out := a.Clone()
		out.Favorites = toggle(out.Favorites, postID)
		return out, nil
	}
}

func toggle(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
