package manifest_test

import (
	"testing"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.NewManifest(
		kernel.NewUUID(), "MF202609011234", "CX615", "HKG",
		time.Now().Add(12*time.Hour), "ops-1", time.Now(),
	)
	require.NoError(t, err)
	return m
}

func TestNewManifest(t *testing.T) {
	m := draftManifest(t)

	assert.False(t, m.IsLocked())
	assert.False(t, m.IsHandedOver())
	assert.False(t, m.IsDeparted())
	assert.True(t, m.IsEmpty())
	require.NoError(t, m.Validate())
}

func TestNewManifest_Invalid(t *testing.T) {
	_, err := manifest.NewManifest(kernel.NewUUID(), "", "CX615", "HKG", time.Now(), "ops-1", time.Now())
	require.Error(t, err)

	_, err = manifest.NewManifest(kernel.NewUUID(), "MF202609011234", "", "HKG", time.Now(), "ops-1", time.Now())
	require.Error(t, err)

	_, err = manifest.NewManifest(kernel.NewUUID(), "MF202609011234", "CX615", "", time.Now(), "ops-1", time.Now())
	require.Error(t, err)
}

func TestAddBag(t *testing.T) {
	m := draftManifest(t)
	bagA := kernel.NewUUID()
	bagB := kernel.NewUUID()

	require.NoError(t, m.AddBag(bagA))
	require.NoError(t, m.AddBag(bagB))
	assert.Len(t, m.BagIDs(), 2)
	assert.True(t, m.ContainsBag(bagA))

	require.ErrorIs(t, m.AddBag(bagA), manifest.ErrBagAlreadyInManifest)
}

func TestRemoveBag(t *testing.T) {
	m := draftManifest(t)
	bagA := kernel.NewUUID()
	require.NoError(t, m.AddBag(bagA))

	require.NoError(t, m.RemoveBag(bagA))
	assert.True(t, m.IsEmpty())

	require.ErrorIs(t, m.RemoveBag(bagA), manifest.ErrBagNotInManifest)
}

func TestLock(t *testing.T) {
	m := draftManifest(t)

	// Empty manifests cannot lock.
	require.ErrorIs(t, m.Lock("ops-1", time.Now()), manifest.ErrManifestEmpty)

	require.NoError(t, m.AddBag(kernel.NewUUID()))
	require.NoError(t, m.Lock("ops-1", time.Now()))
	assert.True(t, m.IsLocked())
	assert.Equal(t, "ops-1", m.LockedBy())
	require.NotNil(t, m.LockedAt())

	// Idempotent-reject on re-lock, no side effects.
	lockedAt := *m.LockedAt()
	require.ErrorIs(t, m.Lock("ops-2", time.Now()), manifest.ErrAlreadyLocked)
	assert.Equal(t, "ops-1", m.LockedBy())
	assert.Equal(t, lockedAt, *m.LockedAt())
}

func TestLock_RequiresActor(t *testing.T) {
	m := draftManifest(t)
	require.NoError(t, m.AddBag(kernel.NewUUID()))
	require.Error(t, m.Lock("", time.Now()))
	assert.False(t, m.IsLocked())
}

func TestStructuralEditsAfterLock(t *testing.T) {
	m := draftManifest(t)
	bagA := kernel.NewUUID()
	require.NoError(t, m.AddBag(bagA))
	require.NoError(t, m.Lock("ops-1", time.Now()))

	require.ErrorIs(t, m.AddBag(kernel.NewUUID()), manifest.ErrManifestLocked)
	require.ErrorIs(t, m.RemoveBag(bagA), manifest.ErrManifestLocked)
	assert.Len(t, m.BagIDs(), 1)
}

func TestRecordHandover(t *testing.T) {
	m := draftManifest(t)
	require.NoError(t, m.AddBag(kernel.NewUUID()))

	// Requires lock.
	require.ErrorIs(t, m.RecordHandover("CX-REF-77", time.Now()), manifest.ErrNotLocked)

	require.NoError(t, m.Lock("ops-1", time.Now()))
	require.NoError(t, m.RecordHandover("CX-REF-77", time.Now()))
	assert.Equal(t, "CX-REF-77", m.CarrierReference())
	assert.True(t, m.IsHandedOver())

	require.ErrorIs(t, m.RecordHandover("CX-REF-78", time.Now()), manifest.ErrAlreadyHandedOver)
	assert.Equal(t, "CX-REF-77", m.CarrierReference())
}

func TestRecordDeparture(t *testing.T) {
	m := draftManifest(t)
	require.NoError(t, m.AddBag(kernel.NewUUID()))
	require.NoError(t, m.Lock("ops-1", time.Now()))

	// Requires prior handover.
	require.ErrorIs(t, m.RecordDeparture(time.Now()), manifest.ErrHandoverRequired)

	require.NoError(t, m.RecordHandover("CX-REF-77", time.Now()))
	require.NoError(t, m.RecordDeparture(time.Now()))
	assert.True(t, m.IsDeparted())

	departedAt := *m.DepartedAt()
	require.ErrorIs(t, m.RecordDeparture(time.Now()), manifest.ErrAlreadyDeparted)
	assert.Equal(t, departedAt, *m.DepartedAt())
}

func TestRestoreManifest(t *testing.T) {
	lockedAt := time.Now()
	bags := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	m, err := manifest.RestoreManifest(
		kernel.NewUUID(), "MF202609015678", "CX615", "HKG",
		time.Now().Add(6*time.Hour), bags,
		true, &lockedAt, "ops-1",
		"", nil, nil, "ops-1", time.Now(),
	)
	require.NoError(t, err)
	assert.True(t, m.IsLocked())
	assert.Len(t, m.BagIDs(), 2)
	require.NoError(t, m.Validate())
}

func TestManifestValidate_NotConstructed(t *testing.T) {
	var m manifest.Manifest
	require.ErrorIs(t, m.Validate(), manifest.ErrManifestIsNotConstructed)
}
