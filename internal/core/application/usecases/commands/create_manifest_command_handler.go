package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/ports"
)

// CreateManifestCommandHandler handles manifest creation. The manifest number
// comes from the identifier generator.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	generator  ports.IdentifierGenerator
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory, generator ports.IdentifierGenerator) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the manifest creation command.
func (h *CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	number, err := h.generator.IssueManifestNumber(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := manifest.NewManifest(
		cmd.ManifestID(), number,
		cmd.FlightNumber(), cmd.Destination(),
		cmd.DepartureAt(), cmd.Actor(), now,
	)
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

	if err = uow.ManifestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, aggregate.ID(),
		actionManifestCreated, cmd.Actor(), now,
		"", manifestSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
