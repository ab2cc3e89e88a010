package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/client/client"
	"github.com/dmitrijs2005/unity/internal/client/config"
	"github.com/dmitrijs2005/unity/internal/client/tui"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token  string
	closed bool

	browseReq  *api.BrowseRequest
	createReq  *api.CreateListingRequest
	toggled    string
	purchased  models.UpgradeKind
	upgradesOf string

	err error
}

func (f *fakeClient) Close() error                 { f.closed = true; return nil }
func (f *fakeClient) Ping(context.Context) error { return f.err }

func (f *fakeClient) Browse(_ context.Context, req *api.BrowseRequest) (*client.BrowsePage, error) {
	f.browseReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &client.BrowsePage{Cards: []presentation.Card{{
		Listing:         models.Listing{ID: "l1", Title: "Jazz trio", Location: "Riga"},
		Decoration:      presentation.Decoration{Sticky: true, AvailableNowBadge: true},
		DisplayImageURL: "https://img/1.jpg",
	}}}, nil
}

func (f *fakeClient) UpgradeOptions(context.Context) ([]models.UpgradeOption, error) {
	return models.UpgradeCatalog(), f.err
}

func (f *fakeClient) MyListings(context.Context) ([]models.Listing, error) {
	return []models.Listing{{ID: "l1", Title: "Jazz trio", AvailableNow: true, Images: []string{"a"}}}, f.err
}

func (f *fakeClient) CreateListing(_ context.Context, req *api.CreateListingRequest) (*models.Listing, error) {
	f.createReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Listing{ID: "new-id", Title: req.Title}, nil
}

func (f *fakeClient) ToggleAvailableNow(_ context.Context, id string) (*models.Listing, error) {
	f.toggled = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.Listing{ID: id}, nil
}

func (f *fakeClient) PurchaseUpgrade(_ context.Context, id string, kind models.UpgradeKind) (*models.Upgrade, error) {
	f.purchased = kind
	if f.err != nil {
		return nil, f.err
	}
	return &models.Upgrade{ID: "u1", ListingID: id, Kind: kind, ExpiresAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}, nil
}

func (f *fakeClient) ActiveUpgrades(_ context.Context, id string) ([]models.Upgrade, error) {
	f.upgradesOf = id
	if f.err != nil {
		return nil, f.err
	}
	return []models.Upgrade{{ID: "u1", ListingID: id, Kind: models.UpgradeHighlight, ExpiresAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}}, nil
}

func (f *fakeClient) PurchaseHistory(context.Context) ([]models.UpgradePurchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.UpgradePurchase{{ID: "p1", ListingID: "l1", Kind: models.UpgradeSticky, DurationDays: 7, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}}, nil
}

// run executes the root command with args against fc and returns stdout.
func run(t *testing.T, fc *fakeClient, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("UNITY_TOKEN", "")
	t.Setenv("UNITY_SERVER_ADDR", "")

	orig := newClient
	t.Cleanup(func() { newClient = orig })
	newClient = func(_ *config.Config, token string) (client.Client, error) {
		fc.token = token
		return fc, nil
	}

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T) (cfgPath, tokenPath string) {
	t.Helper()
	dir := t.TempDir()
	tokenPath = filepath.Join(dir, "token")
	cfgPath = filepath.Join(dir, "client.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"token_file":"`+tokenPath+`"}`), 0o600))
	return cfgPath, tokenPath
}

func TestBrowse_Plain(t *testing.T) {
	fc := &fakeClient{}
	out, err := run(t, fc, "", "browse", "--plain", "--location", "Riga", "--available", "-s", "jazz", "--token", "tok")
	require.NoError(t, err)

	assert.Equal(t, &api.BrowseRequest{Location: "Riga", AvailableOnly: true, Search: "jazz"}, fc.browseReq)
	assert.Equal(t, "tok", fc.token)
	assert.Contains(t, out, "Jazz trio")
	assert.Contains(t, out, "featured,available")
	assert.True(t, fc.closed)
}

func TestBrowse_RunsTUI(t *testing.T) {
	orig := runTUI
	t.Cleanup(func() { runTUI = orig })

	var got tui.Options
	runTUI = func(_ context.Context, _ tui.Browser, opts tui.Options) error {
		got = opts
		return nil
	}

	_, err := run(t, &fakeClient{}, "", "browse", "--category", "Music")
	require.NoError(t, err)
	assert.Equal(t, "Music", got.Category)
	assert.Greater(t, got.RefreshInterval, time.Duration(0))
}

func TestOptions(t *testing.T) {
	out, err := run(t, &fakeClient{}, "", "options")
	require.NoError(t, err)
	assert.Contains(t, out, "image_rotation")
	assert.Contains(t, out, "Sticky Ad")
}

func TestMine(t *testing.T) {
	out, err := run(t, &fakeClient{}, "", "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "Jazz trio")
	assert.Contains(t, out, "yes")
}

func TestCreate_FlagsAndPrompt(t *testing.T) {
	fc := &fakeClient{}
	out, err := run(t, fc, "", "create", "--title", "Show", "--image", "a.jpg", "--image", "b.jpg", "--email", "me@x.io")
	require.NoError(t, err)
	assert.Equal(t, &api.CreateListingRequest{Title: "Show", Images: []string{"a.jpg", "b.jpg"}, Email: "me@x.io"}, fc.createReq)
	assert.Contains(t, out, "Created listing new-id")
}

func TestCreate_PromptsForTitle(t *testing.T) {
	fc := &fakeClient{}
	_, err := run(t, fc, "Prompted\n", "create")
	require.NoError(t, err)
	assert.Equal(t, "Prompted", fc.createReq.Title)
}

func TestLogin_PromptsWhenNoArgument(t *testing.T) {
	cfgPath, tokenPath := writeConfig(t)

	origTTY := isTerminal
	t.Cleanup(func() { isTerminal = origTTY })
	isTerminal = func(int) bool { return false }

	_, err := run(t, &fakeClient{}, "piped-token\n", "-c", cfgPath, "login")
	require.NoError(t, err)

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, "piped-token\n", string(data))
}

func TestToggle(t *testing.T) {
	fc := &fakeClient{}
	out, err := run(t, fc, "", "toggle", "l9")
	require.NoError(t, err)
	assert.Equal(t, "l9", fc.toggled)
	assert.Contains(t, out, "l9 is no longer available now")
}

func TestUpgrade(t *testing.T) {
	fc := &fakeClient{}
	out, err := run(t, fc, "", "upgrade", "l1", "sticky")
	require.NoError(t, err)
	assert.Equal(t, models.UpgradeSticky, fc.purchased)
	assert.Contains(t, out, "Activated sticky on l1")
}

func TestUpgrades(t *testing.T) {
	fc := &fakeClient{}
	out, err := run(t, fc, "", "upgrades", "l3")
	require.NoError(t, err)
	assert.Equal(t, "l3", fc.upgradesOf)
	assert.Contains(t, out, "highlight")
}

func TestPurchases(t *testing.T) {
	out, err := run(t, &fakeClient{}, "", "purchases")
	require.NoError(t, err)
	assert.Contains(t, out, "sticky")
	assert.Contains(t, out, "l1")
}

func TestUpgrade_UnknownKindRejectedLocally(t *testing.T) {
	fc := &fakeClient{}
	_, err := run(t, fc, "", "upgrade", "l1", "gold")
	require.Error(t, err)
	assert.Empty(t, fc.purchased)
}

func TestCommand_ErrorPropagates(t *testing.T) {
	fc := &fakeClient{err: client.ErrForbidden}
	_, err := run(t, fc, "", "toggle", "l1")
	assert.True(t, errors.Is(err, client.ErrForbidden))
}

func TestLogin_SavesToken(t *testing.T) {
	cfgPath, tokenPath := writeConfig(t)

	out, err := run(t, &fakeClient{}, "", "-c", cfgPath, "login", "abc.def.ghi")
	require.NoError(t, err)
	assert.Contains(t, out, "Token saved to "+tokenPath)

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi\n", string(data))

	fc := &fakeClient{}
	_, err = run(t, fc, "", "-c", cfgPath, "mine")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", fc.token)
}
