package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/models"
)

func sampleAccount() models.Account {
	return models.Account{
		Email:          "a@x.com",
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		Name:           "Ana",
		Bio:            "hello",
		ProfilePicture: "file:///pics/me.jpg",
		Theme:          models.ThemeLight,
		Favorites:      []string{"2"},
		LikedPosts:     []string{"1"},
		Posts: []models.Post{
			{ID: "2", URI: "file:///pics/2.jpg", Caption: "second"},
			{ID: "1", URI: "file:///pics/1.jpg", Caption: ""},
		},
	}
}

func TestAccounts_RoundTrip(t *testing.T) {
	in := []models.Account{sampleAccount()}

	data, err := EncodeAccounts(in)
	require.NoError(t, err)

	out, err := DecodeAccounts(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestAccount_RoundTrip(t *testing.T) {
	in := sampleAccount()

	data, err := EncodeAccount(in)
	require.NoError(t, err)

	out, err := DecodeAccount(data)
	require.NoError(t, err)
	require.Equal(t, &in, out)
}

func TestDecodeAccounts_MalformedFailsWithDecodeError(t *testing.T) {
	_, err := DecodeAccounts([]byte(`{not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}

func TestDecodeAccounts_WrongShapeFailsWithDecodeError(t *testing.T) {
	// Valid JSON, wrong shape: an object where a collection is expected.
	_, err := DecodeAccounts([]byte(`{"email":"a@x.com"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}

func TestDecodeAccounts_MissingEmailFails(t *testing.T) {
	_, err := DecodeAccounts([]byte(`[{"name":"Ana"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}

func TestDecodeAccounts_PostWithoutIDFails(t *testing.T) {
	_, err := DecodeAccounts([]byte(`[{"email":"a@x.com","posts":[{"uri":"x"}]}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}

func TestDecodeAccounts_DuplicatePostIDFails(t *testing.T) {
	raw := `[{"email":"a@x.com","posts":[{"id":"1","uri":"x"},{"id":"1","uri":"y"}]}]`
	_, err := DecodeAccounts([]byte(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}

func TestDecodeAccount_Malformed(t *testing.T) {
	_, err := DecodeAccount([]byte(`42`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorDecode)
}
