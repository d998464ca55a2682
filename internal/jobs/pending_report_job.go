package jobs

import (
	"context"
	"time"

	"github.com/silverpath/funnel-api/internal/metrics"
	"go.uber.org/zap"
)

// PendingReportJobName is the name of the pending consultation report job
const PendingReportJobName = "pending_consultation_report"

// DefaultPendingReportTimeout bounds a single report run
const DefaultPendingReportTimeout = 30 * time.Second

// PendingConsultationCounter counts consultations still awaiting follow-up.
// Implemented by service.ConsultationService.
type PendingConsultationCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// PendingReportJob publishes the pending consultation backlog as a gauge and
// logs it so sales can see how many booked leads have not been contacted.
type PendingReportJob struct {
	counter PendingConsultationCounter
	logger  *zap.Logger
	timeout time.Duration
}

func NewPendingReportJob(counter PendingConsultationCounter, logger *zap.Logger, timeout time.Duration) *PendingReportJob {
	if timeout <= 0 {
		timeout = DefaultPendingReportTimeout
	}
	return &PendingReportJob{
		counter: counter,
		logger:  logger,
		timeout: timeout,
	}
}

// Run is called by the scheduler according to the cron expression.
func (j *PendingReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Report(ctx); err != nil {
		j.logger.Error("pending consultation report failed", zap.Error(err))
	}
}

// Report counts pending consultations and updates the gauge
func (j *PendingReportJob) Report(ctx context.Context) (int64, error) {
	start := time.Now()

	pending, err := j.counter.CountPending(ctx)
	if err != nil {
		return 0, err
	}

	metrics.PendingConsultations.Set(float64(pending))
	j.logger.Info("pending consultation report",
		zap.Int64("pending", pending),
		zap.Duration("duration", time.Since(start)))

	return pending, nil
}

// RegisterPendingReportJob adds the report to the scheduler. When runOnStart
// is set the gauge is populated immediately instead of waiting for the first tick.
func RegisterPendingReportJob(scheduler *Scheduler, counter PendingConsultationCounter, logger *zap.Logger, cronExpr string, runOnStart bool) error {
	job := NewPendingReportJob(counter, logger, DefaultPendingReportTimeout)

	if runOnStart {
		go job.Run()
	}

	return scheduler.AddJob(PendingReportJobName, cronExpr, job.Run)
}
