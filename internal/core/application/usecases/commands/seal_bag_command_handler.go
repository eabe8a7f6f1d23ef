package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
)

// SealBagCommandHandler handles bag sealing.
type SealBagCommandHandler struct {
	uowFactory BagUoWFactory
}

// NewSealBagCommandHandler creates a handler for bag sealing.
func NewSealBagCommandHandler(uowFactory BagUoWFactory) SealBagCommandHandler {
	return SealBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seal command.
func (h *SealBagCommandHandler) Handle(ctx context.Context, cmd SealBagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BagRepository().Get(ctx, cmd.BagID())
	if err != nil {
		return err
	}

	before := bagSnapshot(aggregate)
	now := time.Now()
	if err = aggregate.Seal(cmd.Actor(), now); err != nil {
		return err
	}

	if err = uow.BagRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectBag, aggregate.ID(),
		actionBagSealed, cmd.Actor(), now,
		before, bagSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
