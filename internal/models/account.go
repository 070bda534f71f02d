// Package models defines the persisted account and post types.
package models

import (
	"strconv"
	"time"
)

// Theme is the color-scheme preference stored on an account.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Post is an image reference plus caption, embedded in the owning account's
// post sequence. URI is opaque to the core and never inspected; ID is unique
// within the owning account only.
type Post struct {
	ID      string `json:"id"`
	URI     string `json:"uri"`
	Caption string `json:"caption"`
}

// Account is one registered identity: credentials, profile fields, and the
// embedded post sequence (newest first). Email is the unique key and never
// changes after registration. PasswordHash holds a bcrypt hash, never the
// password itself.
type Account struct {
	Email          string   `json:"email"`
	PasswordHash   string   `json:"passwordHash"`
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Theme          Theme    `json:"theme"`
	Favorites      []string `json:"favorites"`
	LikedPosts     []string `json:"likedPosts"`
	Posts          []Post   `json:"posts"`
}

// NewPostID returns a post identifier derived from the current time.
// Nanosecond resolution keeps ids unique within any realistically paced
// session; a collision is a correctness bug, not an expected condition.
func NewPostID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// HasPost reports whether a post with the given id exists on the account.
func (a Account) HasPost(id string) bool {
	for _, p := range a.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// HasLiked reports whether the account has liked the given post id.
func (a Account) HasLiked(id string) bool {
	for _, v := range a.LikedPosts {
		if v == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the account. Mutation functions operate on
// clones so the caller's value is never modified in place.
func (a Account) Clone() Account {
	out := a
	out.Favorites = cloneStrings(a.Favorites)
	out.LikedPosts = cloneStrings(a.LikedPosts)
	if a.Posts != nil {
		out.Posts = make([]Post, len(a.Posts))
		copy(out.Posts, a.Posts)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
