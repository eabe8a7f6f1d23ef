package shipment_test

import (
	"testing"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAWB(t *testing.T) kernel.AWB {
	t.Helper()
	awb, err := kernel.AWBFromString("DH2026090110001")
	require.NoError(t, err)
	return awb
}

func draftShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	w, err := shipment.NewWeight(2.0)
	require.NoError(t, err)
	d, err := shipment.NewDimensions(30, 20, 10)
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), "HKG", w, d, time.Now())
	require.NoError(t, err)
	return s
}

func bookedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s := draftShipment(t)
	require.NoError(t, s.Book(testAWB(t), time.Now()))
	return s
}

func sortedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s := bookedShipment(t)
	w, _ := shipment.NewWeight(2.1)
	d, _ := shipment.NewDimensions(30, 20, 10)
	require.NoError(t, s.RecordIntake(w, d, true, time.Now()))
	require.NoError(t, s.RecordLabeling(time.Now()))
	return s
}

func TestNewShipment(t *testing.T) {
	s := draftShipment(t)

	assert.Equal(t, shipment.Draft, s.Status())
	assert.Nil(t, s.AWB())
	assert.Nil(t, s.Bag())
	assert.Nil(t, s.ManifestRef())
	assert.Nil(t, s.MeasuredWeight())
	require.NoError(t, s.Validate())
}

func TestNewShipment_Invalid(t *testing.T) {
	w, _ := shipment.NewWeight(2.0)
	d, _ := shipment.NewDimensions(30, 20, 10)

	t.Run("zero id", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.UUID{}, "HKG", w, d, time.Now())
		require.Error(t, err)
	})

	t.Run("empty destination", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), "", w, d, time.Now())
		require.Error(t, err)
	})

	t.Run("zero declared values", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), "HKG", shipment.Weight{}, d, time.Now())
		require.Error(t, err)
	})
}

func TestShipmentValidate_NotConstructed(t *testing.T) {
	var s shipment.Shipment
	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestBook(t *testing.T) {
	s := draftShipment(t)
	awb := testAWB(t)

	require.NoError(t, s.Book(awb, time.Now()))
	assert.Equal(t, shipment.Booked, s.Status())
	require.NotNil(t, s.AWB())
	assert.True(t, awb.IsEqual(*s.AWB()))

	// AWB is assigned exactly once.
	other, err := kernel.AWBFromString("DH2026090110002")
	require.NoError(t, err)
	require.ErrorIs(t, s.Book(other, time.Now()), shipment.ErrAWBAlreadyAssigned)
}

func TestRecordIntake_WithinTolerance(t *testing.T) {
	s := bookedShipment(t)
	w, _ := shipment.NewWeight(2.1)
	d, _ := shipment.NewDimensions(30, 20, 10)

	require.NoError(t, s.RecordIntake(w, d, true, time.Now()))
	assert.Equal(t, shipment.ReceivedAtWarehouse, s.Status())
	require.NotNil(t, s.MeasuredWeight())
	assert.InDelta(t, 2.1, s.MeasuredWeight().Kg(), 0.001)
}

func TestRecordIntake_OutOfTolerance(t *testing.T) {
	s := bookedShipment(t)
	w, _ := shipment.NewWeight(5.0)
	d, _ := shipment.NewDimensions(30, 20, 10)

	require.NoError(t, s.RecordIntake(w, d, false, time.Now()))
	assert.Equal(t, shipment.MismatchFlagged, s.Status())

	// Blocked until the audited clear.
	require.ErrorIs(t, s.RecordLabeling(time.Now()), shipment.ErrInvalidTransition)

	require.NoError(t, s.ClearMismatch(time.Now()))
	assert.Equal(t, shipment.ReceivedAtWarehouse, s.Status())
	require.NoError(t, s.RecordLabeling(time.Now()))
	assert.Equal(t, shipment.ReadyForSorting, s.Status())
}

func TestAssignToBag(t *testing.T) {
	s := sortedShipment(t)
	bagA := kernel.NewUUID()
	bagB := kernel.NewUUID()

	require.NoError(t, s.AssignToBag(bagA, time.Now()))
	assert.Equal(t, shipment.BaggedForExport, s.Status())
	require.NotNil(t, s.Bag())
	assert.True(t, bagA.IsEqual(*s.Bag()))

	// One bag per parcel.
	require.ErrorIs(t, s.AssignToBag(bagB, time.Now()), shipment.ErrAlreadyBagged)
}

func TestAssignToBag_WrongStatus(t *testing.T) {
	s := bookedShipment(t)
	require.ErrorIs(t, s.AssignToBag(kernel.NewUUID(), time.Now()), shipment.ErrInvalidTransition)
	assert.Nil(t, s.Bag())
}

func TestRemoveFromBag(t *testing.T) {
	s := sortedShipment(t)
	require.NoError(t, s.AssignToBag(kernel.NewUUID(), time.Now()))

	require.NoError(t, s.RemoveFromBag(time.Now()))
	assert.Equal(t, shipment.ReadyForSorting, s.Status())
	assert.Nil(t, s.Bag())

	require.ErrorIs(t, s.RemoveFromBag(time.Now()), shipment.ErrNotBagged)
}

func TestManifestFlow(t *testing.T) {
	s := sortedShipment(t)
	require.NoError(t, s.AssignToBag(kernel.NewUUID(), time.Now()))

	manifestID := kernel.NewUUID()
	require.NoError(t, s.IncludeInManifest(manifestID, time.Now()))
	assert.Equal(t, shipment.InExportManifest, s.Status())
	require.NotNil(t, s.ManifestRef())

	// At most one non-void manifest.
	require.ErrorIs(t, s.IncludeInManifest(kernel.NewUUID(), time.Now()), shipment.ErrAlreadyManifested)

	require.NoError(t, s.MarkReadyForHandover(time.Now()))
	require.NoError(t, s.HandOverToCarrier(time.Now()))
	require.NoError(t, s.Depart(time.Now()))
	assert.Equal(t, shipment.Departed, s.Status())
}

func TestRemoveFromManifest(t *testing.T) {
	s := sortedShipment(t)
	require.NoError(t, s.AssignToBag(kernel.NewUUID(), time.Now()))
	require.NoError(t, s.IncludeInManifest(kernel.NewUUID(), time.Now()))

	require.NoError(t, s.RemoveFromManifest(time.Now()))
	assert.Equal(t, shipment.BaggedForExport, s.Status())
	assert.Nil(t, s.ManifestRef())
}

func TestRestoreShipment(t *testing.T) {
	original := sortedShipment(t)

	restored, err := shipment.RestoreShipment(
		original.ID(),
		original.AWB(),
		original.Destination(),
		original.DeclaredWeight(),
		original.DeclaredDimensions(),
		original.MeasuredWeight(),
		original.MeasuredDimensions(),
		original.Status(),
		nil,
		nil,
		original.CreatedAt(),
		original.UpdatedAt(),
	)
	require.NoError(t, err)
	assert.Equal(t, original.Status(), restored.Status())
	assert.True(t, original.ID().IsEqual(restored.ID()))
	require.NoError(t, restored.Validate())
}

func TestRestoreShipment_InvalidStatus(t *testing.T) {
	s := draftShipment(t)
	_, err := shipment.RestoreShipment(
		s.ID(), nil, s.Destination(), s.DeclaredWeight(), s.DeclaredDimensions(),
		nil, nil, shipment.Status(77), nil, nil, s.CreatedAt(), s.UpdatedAt(),
	)
	require.Error(t, err)
}
