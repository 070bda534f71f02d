package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoria-app/memoria/internal/common"
	"github.com/memoria-app/memoria/internal/models"
	"github.com/memoria-app/memoria/internal/services"
)

// ---- fakes ----

// fakeCore implements the core interface over a single in-memory account.
type fakeCore struct {
	account   *models.Account
	loginErr  error
	regErr    error
	lastEmail string
}

func (f *fakeCore) Apply(ctx context.Context, email string, mutate services.Mutation) (*models.Account, error) {
	f.lastEmail = email
	updated, err := mutate(*f.account)
	if err != nil {
		return nil, err
	}
	f.account = &updated
	return &updated, nil
}

func (f *fakeCore) Register(ctx context.Context, email, password string) (*models.Account, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.account = &models.Account{
		Email:      email,
		Theme:      models.ThemeLight,
		Favorites:  []string{},
		LikedPosts: []string{},
		Posts:      []models.Post{},
	}
	return f.account, nil
}

func (f *fakeCore) Login(ctx context.Context, email, password string) (*models.Account, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.account, nil
}

func (f *fakeCore) Logout(ctx context.Context) error { return nil }

func (f *fakeCore) Current(ctx context.Context) (*models.Account, error) {
	if f.account == nil {
		return nil, common.ErrorNotFound
	}
	return f.account, nil
}

// fakePicker returns a canned URI and records the picked path.
type fakePicker struct {
	uri    string
	picked string
}

func (f *fakePicker) Pick(path string) (string, error) {
	f.picked = path
	return f.uri, nil
}

func newTestApp(c core, pick imagePicker) *App {
	return &App{
		core:   c,
		picker: pick,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func stubPrompts(t *testing.T, text string, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
}

// ---- tests ----

func TestRegister_SetsCurrentAccount(t *testing.T) {
	stubPrompts(t, "a@x.com", "p")
	app := newTestApp(&fakeCore{}, &fakePicker{})

	require.NoError(t, app.Register(context.Background()))
	require.True(t, app.isLoggedIn())
	assert.Equal(t, "a@x.com", app.current.Email)
}

func TestRegister_DuplicateReportedAsError(t *testing.T) {
	stubPrompts(t, "a@x.com", "p")
	app := newTestApp(&fakeCore{regErr: common.ErrorAlreadyExists}, &fakePicker{})

	err := app.Register(context.Background())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_BadCredentials(t *testing.T) {
	stubPrompts(t, "a@x.com", "wrong")
	app := newTestApp(&fakeCore{loginErr: common.ErrorNotFound}, &fakePicker{})

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.False(t, app.isLoggedIn())
}

func TestLogout_ClearsCurrent(t *testing.T) {
	fake := &fakeCore{account: &models.Account{Email: "a@x.com"}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestAddPhoto_RequiresLogin(t *testing.T) {
	app := newTestApp(&fakeCore{}, &fakePicker{})
	err := app.AddPhoto(context.Background(), []string{"/tmp/a.jpg"})
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestAddPhoto_ImportsAndPrepends(t *testing.T) {
	fake := &fakeCore{account: &models.Account{
		Email: "a@x.com",
		Posts: []models.Post{{ID: "1", URI: "old"}},
	}}
	pick := &fakePicker{uri: "file:///media/new.jpg"}
	app := newTestApp(fake, pick)
	app.refresh(fake.account)

	require.NoError(t, app.AddPhoto(context.Background(), []string{"/tmp/a.jpg"}))

	assert.Equal(t, "/tmp/a.jpg", pick.picked)
	require.Len(t, app.current.Posts, 2)
	assert.Equal(t, "file:///media/new.jpg", app.current.Posts[0].URI)
	assert.Equal(t, "1", app.current.Posts[1].ID)
	assert.Equal(t, "a@x.com", fake.lastEmail)
}

func TestCaption_UpdatesPost(t *testing.T) {
	stubPrompts(t, "my caption", "")
	fake := &fakeCore{account: &models.Account{
		Email: "a@x.com",
		Posts: []models.Post{{ID: "1", URI: "x"}},
	}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	require.NoError(t, app.Caption(context.Background(), []string{"1"}))
	assert.Equal(t, "my caption", app.current.Posts[0].Caption)
}

func TestCaption_MissingPost(t *testing.T) {
	stubPrompts(t, "text", "")
	fake := &fakeCore{account: &models.Account{Email: "a@x.com"}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	err := app.Caption(context.Background(), []string{"404"})
	assert.ErrorIs(t, err, common.ErrorPostNotFound)
}

func TestRemove_UnknownIDIsQuietNoOp(t *testing.T) {
	fake := &fakeCore{account: &models.Account{
		Email: "a@x.com",
		Posts: []models.Post{{ID: "1", URI: "x"}},
	}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	require.NoError(t, app.Remove(context.Background(), []string{"404"}))
	assert.Len(t, app.current.Posts, 1)
}

func TestToggleTheme_Flips(t *testing.T) {
	fake := &fakeCore{account: &models.Account{Email: "a@x.com", Theme: models.ThemeLight}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	require.NoError(t, app.ToggleTheme(context.Background()))
	assert.Equal(t, models.ThemeDark, app.current.Theme)

	require.NoError(t, app.ToggleTheme(context.Background()))
	assert.Equal(t, models.ThemeLight, app.current.Theme)
}

func TestEditProfile_SavesNameAndBio(t *testing.T) {
	stubPrompts(t, "Ana", "")
	fake := &fakeCore{account: &models.Account{Email: "a@x.com"}}
	app := newTestApp(fake, &fakePicker{})
	app.refresh(fake.account)

	require.NoError(t, app.EditProfile(context.Background()))
	assert.Equal(t, "Ana", app.current.Name)
	assert.Equal(t, "Ana", app.current.Bio)
}

func TestSetPicture_UsesPickerURI(t *testing.T) {
	fake := &fakeCore{account: &models.Account{Email: "a@x.com"}}
	pick := &fakePicker{uri: "file:///media/me.jpg"}
	app := newTestApp(fake, pick)
	app.refresh(fake.account)

	require.NoError(t, app.SetPicture(context.Background(), []string{"/tmp/me.jpg"}))
	assert.Equal(t, "file:///media/me.jpg", app.current.ProfilePicture)
}
