package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/ports"
)

// CreateBagCommandHandler handles bag creation. The bag number comes from the
// identifier generator.
type CreateBagCommandHandler struct {
	uowFactory BagUoWFactory
	generator  ports.IdentifierGenerator
}

// NewCreateBagCommandHandler creates a handler for bag creation.
func NewCreateBagCommandHandler(uowFactory BagUoWFactory, generator ports.IdentifierGenerator) CreateBagCommandHandler {
	return CreateBagCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the bag creation command.
func (h *CreateBagCommandHandler) Handle(ctx context.Context, cmd CreateBagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	number, err := h.generator.IssueBagNumber(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := bag.NewBag(cmd.BagID(), number, cmd.Destination(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BagRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectBag, aggregate.ID(),
		actionBagCreated, cmd.Actor(), now,
		"", bagSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
