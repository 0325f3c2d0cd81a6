package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esq_report_bot/internal/app"
	"esq_report_bot/internal/domain/recipients"
	"esq_report_bot/internal/infra/config"
	idb "esq_report_bot/internal/infra/database"
	"esq_report_bot/internal/infra/logger"
	"esq_report_bot/internal/infra/scheduler"
	"esq_report_bot/internal/infra/sharepoint"
	"esq_report_bot/internal/infra/smtp"
)

func main() {
	runOnce := flag.Bool("once", false, "run the snapshot and digest flows immediately and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg)
	log := logger.Get()
	log.WithField("environment", cfg.Environment).Info("Configuration loaded.")

	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database.")
	}
	defer db.Close()
	log.Info("Database connection established.")

	submissionRepo := idb.NewPostgresSubmissionRepository(db, log)
	library := sharepoint.NewClient(cfg.SharePointSiteURL, cfg.SharePointLibrary, cfg.SharePointUsername, cfg.SharePointPassword)
	sender := smtp.NewSender(cfg.SMTPHost, cfg.SMTPPort)

	service := app.NewReportService(submissionRepo, library, sender, log, app.ReportConfig{
		FormType:       cfg.FormType,
		Folder:         cfg.SharePointFolder,
		YouthWorkbook:  cfg.YouthWorkbook,
		ParentWorkbook: cfg.ParentWorkbook,
		RecipientsFile: cfg.RecipientsWorkbook,
		MailFrom:       cfg.MailFrom,
		FallbackEmail:  cfg.FallbackEmail,
		Policy:         recipients.DefaultPolicy(),
	})

	if *runOnce {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := service.Run(ctx, time.Now()); err != nil {
			log.WithError(err).Error("Report run failed.")
			os.Exit(1)
		}
		log.Info("Report run completed successfully.")
		return
	}

	reportScheduler := scheduler.NewReportScheduler(service, log, cfg.CronSpecDaily)
	reportScheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	reportScheduler.Stop()
	log.Info("Shut down gracefully.")
}
