package jobs

import (
	"context"
	"log/slog"
	"time"

	"exportflow/internal/core/domain/model/manifest"

	"github.com/robfig/cron/v3"
)

// manifestSource lists locked manifests whose scheduled departure has passed
// but which have not been recorded as departed yet.
type manifestSource interface {
	GetAllLockedNotDeparted(ctx context.Context, asOf time.Time) ([]*manifest.Manifest, error)
}

// DepartureWatchJob flags locked manifests whose scheduled departure time has
// passed without a recorded departure. It only observes and logs; the
// departure itself is recorded through the departure command when the carrier
// callback or a staff member confirms the flight left.
type DepartureWatchJob struct {
	manifests manifestSource
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDepartureWatchJob creates a new job for flagging overdue departures.
func NewDepartureWatchJob(manifests manifestSource, logger *slog.Logger) *DepartureWatchJob {
	return &DepartureWatchJob{
		manifests: manifests,
		cron:      cron.New(),
		logger:    logger.With("component", "departure_watch_job"),
	}
}

// Start begins the departure watch job to run every minute.
func (j *DepartureWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Departure watch job started (running every minute)")
	return nil
}

// Stop stops the departure watch job.
func (j *DepartureWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Departure watch job stopped")
}

func (j *DepartureWatchJob) run() {
	ctx := context.Background()

	overdue, err := j.manifests.GetAllLockedNotDeparted(ctx, time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Departure watch job failed to list manifests", "error", err)
		return
	}

	for _, m := range overdue {
		j.logger.WarnContext(ctx, "Manifest past scheduled departure without recorded departure",
			"manifest", m.Number(),
			"flight", m.FlightNumber(),
			"scheduled_departure", m.DepartureAt(),
		)
	}
}
