package scheduler

import (
	"context"
	"time"

	"esq_report_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// runTimeout bounds one full report pass; the collaborators carry their own
// per-call timeouts.
const runTimeout = 30 * time.Minute

// ReportScheduler triggers the report pass on a daily cron spec. The pass
// itself decides whether the monthly snapshot work applies.
type ReportScheduler struct {
	cronEngine    *cron.Cron
	runner        app.Runner
	logger        *logrus.Logger
	cronSpecDaily string
}

func NewReportScheduler(runner app.Runner, logger *logrus.Logger, cronSpecDaily string) *ReportScheduler {
	return &ReportScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)),
		runner:        runner,
		logger:        logger,
		cronSpecDaily: cronSpecDaily,
	}
}

func (s *ReportScheduler) Start() {
	s.logger.Info("Starting report scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDaily, func() {
		s.logger.Info("Daily cron job triggered for report run.")
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if err := s.runner.Run(ctx, time.Now()); err != nil {
			s.logger.WithError(err).Error("Report run failed.")
		}
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add daily report cron job.")
	}

	s.cronEngine.Start()
	s.logger.Info("Report scheduler started.")
}

func (s *ReportScheduler) Stop() {
	s.logger.Info("Stopping report scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Report scheduler stopped.")
}
