package commands_test

import (
	"testing"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "HKG", testWeight(t, 2.0), testDims(t), "clerk-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	shipmentRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)

	err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateShipmentCommand_RequiresActor(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "HKG", testWeight(t, 2.0), testDims(t), "")
	require.ErrorIs(t, err, commands.ErrActorIsRequired)
}
