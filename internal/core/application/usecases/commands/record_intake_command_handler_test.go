package commands_test

import (
	"testing"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intakePolicy(t *testing.T) services.MismatchPolicy {
	t.Helper()
	policy, err := services.NewMismatchPolicy(0.05, 0.10)
	require.NoError(t, err)
	return policy
}

func intakeMocks(ctx any, aggregate *shipment.Shipment) (*MockShipmentRepository, *MockAuditRepository, *MockUoW, *MockShipmentUoWFactory) {
	shipmentRepo := new(MockShipmentRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()
	return shipmentRepo, auditRepo, uow, factory
}

func TestRecordIntakeCommandHandler_Handle_WithinTolerance(t *testing.T) {
	ctx := t.Context()

	aggregate := bookedShipment(t) // declared 2.0kg
	cmd, err := commands.NewRecordIntakeCommand(
		aggregate.ID(), testWeight(t, 2.05), testDims(t), "warehouse-1")
	require.NoError(t, err)

	shipmentRepo, auditRepo, uow, factory := intakeMocks(ctx, aggregate)

	handler := commands.NewRecordIntakeCommandHandler(factory, intakePolicy(t))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, shipment.ReceivedAtWarehouse, aggregate.Status())
	require.NotNil(t, aggregate.MeasuredWeight())
	assert.InDelta(t, 2.05, aggregate.MeasuredWeight().Kg(), 1e-9)

	shipmentRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordIntakeCommandHandler_Handle_OutsideTolerance(t *testing.T) {
	ctx := t.Context()

	aggregate := bookedShipment(t) // declared 2.0kg
	cmd, err := commands.NewRecordIntakeCommand(
		aggregate.ID(), testWeight(t, 5.0), testDims(t), "warehouse-1")
	require.NoError(t, err)

	_, _, uow, factory := intakeMocks(ctx, aggregate)

	handler := commands.NewRecordIntakeCommandHandler(factory, intakePolicy(t))
	require.NoError(t, handler.Handle(ctx, cmd))

	// Measurements are stored but the shipment is blocked in the side-state.
	assert.Equal(t, shipment.MismatchFlagged, aggregate.Status())
	require.NotNil(t, aggregate.MeasuredWeight())
	uow.AssertExpectations(t)
}

func TestRecordIntakeCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()

	aggregate := draftShipment(t) // not yet booked
	cmd, err := commands.NewRecordIntakeCommand(
		aggregate.ID(), testWeight(t, 2.0), testDims(t), "warehouse-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordIntakeCommandHandler(factory, intakePolicy(t))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	assert.Equal(t, shipment.Draft, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
