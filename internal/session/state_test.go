package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
)

type fakeCatalog map[domain.ListingID]bool

func (f fakeCatalog) Has(id domain.ListingID) bool { return f[id] }

func seedCatalog() fakeCatalog {
	return fakeCatalog{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
}

func TestNewState(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	st := NewState(now)

	assert.Equal(t, domain.TabAllListings, st.Tab)
	assert.Equal(t, domain.CategoryAll, st.View.Category())
	assert.Equal(t, "", st.View.Search())
	assert.Zero(t, st.View.FavoriteCount())
	assert.Equal(t, now, st.CreatedAt)
}

func TestDispatchRejectsListingsOutsideCatalog(t *testing.T) {
	st := NewState(time.Now())

	got, err := Dispatch(st, domain.ToggleFavorite{ID: 42}, seedCatalog())
	require.ErrorIs(t, err, domain.ErrUnknownListing)
	assert.Zero(t, got.View.FavoriteCount())

	got, err = Dispatch(st, domain.ToggleFavorite{ID: 3}, seedCatalog())
	require.NoError(t, err)
	assert.True(t, got.View.IsFavorite(3))
}

func TestDispatchScenario(t *testing.T) {
	st := NewState(time.Now())
	var err error
	for _, id := range []domain.ListingID{1, 2, 1} {
		st, err = Dispatch(st, domain.ToggleFavorite{ID: id}, seedCatalog())
		require.NoError(t, err)
	}
	assert.Equal(t, []domain.ListingID{2}, st.View.Favorites())
}

func TestDispatchKeepsStateOnCategoryError(t *testing.T) {
	st, err := Dispatch(NewState(time.Now()), domain.SetCategory{ID: domain.CategoryHome}, seedCatalog())
	require.NoError(t, err)

	got, err := Dispatch(st, domain.SetCategory{ID: "boats"}, seedCatalog())
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Equal(t, domain.CategoryHome, got.View.Category())
}

func TestSelectTabLeavesViewStateAlone(t *testing.T) {
	st, err := Dispatch(NewState(time.Now()), domain.SetSearch{Text: "camry"}, seedCatalog())
	require.NoError(t, err)
	st, err = Dispatch(st, domain.ToggleFavorite{ID: 3}, seedCatalog())
	require.NoError(t, err)

	for _, tab := range domain.Tabs() {
		got, err := SelectTab(st, tab)
		require.NoError(t, err)
		assert.Equal(t, tab, got.Tab)
		assert.Equal(t, "camry", got.View.Search())
		assert.Equal(t, []domain.ListingID{3}, got.View.Favorites())
	}

	got, err := SelectTab(st, "settings")
	require.ErrorIs(t, err, domain.ErrUnknownTab)
	assert.Equal(t, st.Tab, got.Tab)
}

func TestSnapshotRestoresState(t *testing.T) {
	st := NewState(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	st, _ = Dispatch(st, domain.SetSearch{Text: "диван"}, seedCatalog())
	st, _ = Dispatch(st, domain.SetCategory{ID: domain.CategoryHome}, seedCatalog())
	st, _ = Dispatch(st, domain.ToggleFavorite{ID: 2}, seedCatalog())
	st, _ = SelectTab(st, domain.TabFavorites)

	restored, err := st.Snapshot().State()
	require.NoError(t, err)
	assert.Equal(t, "диван", restored.View.Search())
	assert.Equal(t, domain.CategoryHome, restored.View.Category())
	assert.Equal(t, []domain.ListingID{2}, restored.View.Favorites())
	assert.Equal(t, domain.TabFavorites, restored.Tab)
	assert.Equal(t, st.CreatedAt, restored.CreatedAt)
}

func TestSnapshotRejectsCorruptData(t *testing.T) {
	_, err := Snapshot{Category: "boats"}.State()
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = Snapshot{Tab: "settings"}.State()
	assert.ErrorIs(t, err, domain.ErrUnknownTab)

	st, err := Snapshot{}.State()
	require.NoError(t, err)
	assert.Equal(t, domain.InitialTab, st.Tab)
	assert.Equal(t, domain.CategoryAll, st.View.Category())
}
