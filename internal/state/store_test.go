package state

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchAndSnapshot(t *testing.T) {
	store := NewStore(Seed())

	before := store.Snapshot()
	store.Dispatch(AddProduct{Product: entity.Product{ID: "99", Name: "Rooibos Tea 40s"}})
	after := store.Snapshot()

	assert.Len(t, before.Products, 8, "earlier snapshot must not see the dispatch")
	assert.Len(t, after.Products, 9)
}

func TestStore_OverlayPrefersNonEmptyRemote(t *testing.T) {
	store := NewStore(Seed())
	remoteUsers := []entity.User{{ID: "r1", Name: "Remote User", Role: entity.RoleRetailer}}

	store.Overlay(RemoteData{Users: remoteUsers}, true)

	snap := store.Snapshot()
	assert.Equal(t, remoteUsers, snap.Users)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
}

func TestStore_OverlayKeepsSeedForEmptyTables(t *testing.T) {
	store := NewStore(Seed())

	store.Overlay(RemoteData{}, true)

	snap := store.Snapshot()
	assert.Len(t, snap.Products, 8, "empty remote table keeps the seeded list")
	assert.Len(t, snap.Users, 4)
}

func TestStore_OverlayReplacesSeedWhenPolicyDisabled(t *testing.T) {
	store := NewStore(Seed())

	store.Overlay(RemoteData{}, false)

	snap := store.Snapshot()
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Users)
}

func TestStore_OverlaySettings(t *testing.T) {
	store := NewStore(Seed())
	settings := entity.DefaultPlatformSettings()
	settings.CommissionRate = 9

	store.Overlay(RemoteData{Settings: &settings}, true)

	assert.Equal(t, float64(9), store.Snapshot().PlatformSettings.CommissionRate)
}

func TestStore_SetErrorKeepsSeededData(t *testing.T) {
	store := NewStore(Seed())

	store.SetError(errors.New("connection refused"))

	snap := store.Snapshot()
	require.Error(t, snap.Err)
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Products, 8, "seeded data keeps serving on batch-read failure")
}
