package commands_test

import (
	"testing"
	"time"

	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func testWeight(t *testing.T, kg float64) shipment.Weight {
	t.Helper()
	w, err := shipment.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func testDims(t *testing.T) shipment.Dimensions {
	t.Helper()
	d, err := shipment.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	return d
}

func draftShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), "HKG", testWeight(t, 2.0), testDims(t), time.Now())
	require.NoError(t, err)
	return s
}

func bookedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s := draftShipment(t)
	awb, err := kernel.AWBFromString("DH2026090110001")
	require.NoError(t, err)
	require.NoError(t, s.Book(awb, time.Now()))
	return s
}

func sortedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s := bookedShipment(t)
	require.NoError(t, s.RecordIntake(testWeight(t, 2.05), testDims(t), true, time.Now()))
	require.NoError(t, s.RecordLabeling(time.Now()))
	return s
}

func baggedShipment(t *testing.T, bagID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := sortedShipment(t)
	require.NoError(t, s.AssignToBag(bagID, time.Now()))
	return s
}

func openBag(t *testing.T, destination string) *bag.Bag {
	t.Helper()
	b, err := bag.NewBag(kernel.NewUUID(), "BG202609010001", destination, time.Now())
	require.NoError(t, err)
	return b
}

func sealedBagWith(t *testing.T, destination string, shipmentIDs ...kernel.UUID) *bag.Bag {
	t.Helper()
	b := openBag(t, destination)
	for _, id := range shipmentIDs {
		require.NoError(t, b.AddShipment(id))
	}
	require.NoError(t, b.Seal("ops-1", time.Now()))
	return b
}

func emptyManifest(t *testing.T, destination string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.NewManifest(
		kernel.NewUUID(), "MF202609011234", "CX615", destination,
		time.Now().Add(12*time.Hour), "ops-1", time.Now(),
	)
	require.NoError(t, err)
	return m
}

func manifestWithBag(t *testing.T, destination string, bagID kernel.UUID) *manifest.Manifest {
	t.Helper()
	m := emptyManifest(t, destination)
	require.NoError(t, m.AddBag(bagID))
	return m
}

func lockedManifest(t *testing.T, destination string, bagID kernel.UUID) *manifest.Manifest {
	t.Helper()
	m := manifestWithBag(t, destination, bagID)
	require.NoError(t, m.Lock("ops-1", time.Now()))
	return m
}
