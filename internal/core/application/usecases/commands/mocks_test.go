package commands_test

import (
	"context"
	"time"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByAWB(ctx context.Context, awb kernel.AWB) (*shipment.Shipment, error) {
	args := m.Called(ctx, awb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByBag(ctx context.Context, bagID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, bagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, manifestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockBagRepository struct{ mock.Mock }

func (m *MockBagRepository) Add(ctx context.Context, b *bag.Bag) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBagRepository) Update(ctx context.Context, b *bag.Bag) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBagRepository) Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*bag.Bag, error) {
	args := m.Called(ctx, manifestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bag.Bag), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) GetAllLockedNotDeparted(ctx context.Context, asOf time.Time) ([]*manifest.Manifest, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*manifest.Manifest), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) GetAllBySubject(ctx context.Context, subjectType audit.SubjectType, subjectID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, subjectType, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, event *tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) BagRepository() ports.BagRepository {
	args := m.Called()
	return args.Get(0).(ports.BagRepository)
}

func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockBagUoWFactory struct{ mock.Mock }

func (m *MockBagUoWFactory) Create() commands.BagUoW {
	args := m.Called()
	return args.Get(0).(commands.BagUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockIdentifierGenerator struct{ mock.Mock }

func (m *MockIdentifierGenerator) IssueAWB(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentifierGenerator) IssueBagNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentifierGenerator) IssueManifestNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockTrackingEventPublisher struct{ mock.Mock }

func (m *MockTrackingEventPublisher) Publish(ctx context.Context, event *tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
