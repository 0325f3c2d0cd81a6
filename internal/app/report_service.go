// Package app orchestrates the ESQ reporting flows over the domain
// interfaces: the monthly workbook snapshots and the daily per-subject mail
// digest.
package app

import (
	"context"
	"fmt"
	"time"

	"esq_report_bot/internal/domain/docs"
	"esq_report_bot/internal/domain/mail"
	"esq_report_bot/internal/domain/mapping"
	"esq_report_bot/internal/domain/recipients"
	"esq_report_bot/internal/domain/report"
	"esq_report_bot/internal/domain/submission"
	"esq_report_bot/internal/infra/excel"

	"github.com/sirupsen/logrus"
)

// Runner executes the full scheduled report pass for a reference date.
type Runner interface {
	Run(ctx context.Context, now time.Time) error
}

// ReportConfig carries the per-deployment settings of the report flows.
type ReportConfig struct {
	FormType       string
	Folder         string
	YouthWorkbook  string
	ParentWorkbook string
	RecipientsFile string
	SheetName      string
	MailFrom       string
	MailSubject    string
	FallbackEmail  string
	Policy         recipients.LookupPolicy
}

// MailFailure records one subject group whose digest mail could not be
// delivered.
type MailFailure struct {
	CPR string
	Err error
}

// RunReport summarizes one daily digest pass. Per-item failures are
// collected here instead of aborting the run; the run itself only fails on
// store or document-library errors.
type RunReport struct {
	Transformed  int
	Skipped      int
	Failures     []report.ItemFailure
	Sent         int
	MailFailures []MailFailure
}

// ReportService sequences the reporting flows.
type ReportService struct {
	submissions submission.Repository
	library     docs.Library
	sender      mail.Sender
	logger      *logrus.Logger
	cfg         ReportConfig
}

func NewReportService(
	subs submission.Repository,
	library docs.Library,
	sender mail.Sender,
	logger *logrus.Logger,
	cfg ReportConfig,
) *ReportService {
	if cfg.SheetName == "" {
		cfg.SheetName = "Besvarelser"
	}
	if cfg.MailSubject == "" {
		cfg.MailSubject = "Ny(e) ESQ besvarelse(r)"
	}
	return &ReportService{
		submissions: subs,
		library:     library,
		sender:      sender,
		logger:      logger,
		cfg:         cfg,
	}
}

// Run executes one scheduled pass for the reference date: on the first day
// of the month the workbook snapshots are updated before the daily digest
// runs. Any fatal condition is returned to the caller; the scheduler
// surfaces it to the operator.
func (s *ReportService) Run(ctx context.Context, now time.Time) error {
	if now.Day() == 1 {
		s.logger.Info("First day of the month: updating workbook snapshots with new submissions.")
		if err := s.RunMonthlySnapshot(ctx, now); err != nil {
			return fmt.Errorf("monthly snapshot failed: %w", err)
		}
	}

	rep, err := s.RunDailyDigest(ctx, now)
	if err != nil {
		return fmt.Errorf("daily digest failed: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"transformed": rep.Transformed,
		"skipped":     rep.Skipped,
		"failed":      len(rep.Failures),
		"sent":        rep.Sent,
		"mail_failed": len(rep.MailFailures),
	}).Info("Daily digest run completed.")
	return nil
}

// RunMonthlySnapshot creates or extends the per-role workbook snapshots in
// the report folder with the previous month's submissions, then applies
// presentation formatting. Document-library failures are fatal.
func (s *ReportService) RunMonthlySnapshot(ctx context.Context, now time.Time) error {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := monthStart.AddDate(0, 0, -1) // last day of previous month
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())

	files, err := s.library.ListFiles(ctx, s.cfg.Folder)
	if err != nil {
		return fmt.Errorf("failed to list report folder %q: %w", s.cfg.Folder, err)
	}

	targets := []struct {
		fileName string
		def      *mapping.Definition
	}{
		{s.cfg.YouthWorkbook, mapping.Youth()},
		{s.cfg.ParentWorkbook, mapping.Parent()},
	}
	for _, target := range targets {
		if err := s.updateSnapshot(ctx, files, target.fileName, target.def, start, end); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportService) updateSnapshot(ctx context.Context, files []string, fileName string, def *mapping.Definition, start, end time.Time) error {
	log := s.logger.WithField("workbook", fileName)

	var content []byte
	if !containsFile(files, fileName) {
		log.Info("Workbook not found in the report folder, building a full snapshot.")
		subs, err := s.submissions.List(ctx, s.cfg.FormType, submission.Filter{})
		if err != nil {
			return fmt.Errorf("failed to fetch submissions for %q: %w", fileName, err)
		}
		rows, failures := report.BuildTable(subs, def)
		s.logFailures(log, failures)
		content, err = excel.BuildWorkbook(s.cfg.SheetName, def.Columns(), rowsToCells(def, rows))
		if err != nil {
			return fmt.Errorf("failed to build workbook %q: %w", fileName, err)
		}
	} else {
		log.WithFields(logrus.Fields{
			"from": start.Format("2006-01-02"),
			"to":   end.Format("2006-01-02"),
		}).Info("Appending last month's submissions to workbook.")
		subs, err := s.submissions.List(ctx, s.cfg.FormType, submission.Filter{StartDate: start, EndDate: end})
		if err != nil {
			return fmt.Errorf("failed to fetch submissions for %q: %w", fileName, err)
		}
		rows, failures := report.BuildTable(subs, def)
		s.logFailures(log, failures)
		content, err = s.library.Download(ctx, s.cfg.Folder, fileName)
		if err != nil {
			return fmt.Errorf("failed to download workbook %q: %w", fileName, err)
		}
		if len(rows) > 0 {
			content, err = excel.AppendRows(content, s.cfg.SheetName, rowsToCells(def, rows))
			if err != nil {
				return fmt.Errorf("failed to append rows to workbook %q: %w", fileName, err)
			}
		}
	}

	formatted, err := excel.FormatWorkbook(content, s.cfg.SheetName, excel.FormatOptions{
		BoldHeader:      true,
		SortDescending:  true,
		ColumnWidth:     100,
		FreezeHeader:    true,
		HorizontalAlign: "left",
		VerticalAlign:   "top",
	})
	if err != nil {
		return fmt.Errorf("failed to format workbook %q: %w", fileName, err)
	}
	if err := s.library.Upload(ctx, s.cfg.Folder, fileName, formatted); err != nil {
		return fmt.Errorf("failed to upload workbook %q: %w", fileName, err)
	}
	return nil
}

type digestEntry struct {
	row     *report.Row
	def     *mapping.Definition
	address string
}

// RunDailyDigest fetches yesterday's submissions, transforms them with
// per-item failure isolation, groups the rows by the child's CPR and sends
// one digest mail per subject. Mail delivery failures are recorded and the
// remaining groups still go out.
func (s *ReportService) RunDailyDigest(ctx context.Context, now time.Time) (*RunReport, error) {
	yesterday := now.AddDate(0, 0, -1)
	subs, err := s.submissions.List(ctx, s.cfg.FormType, submission.Filter{TargetDate: yesterday})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions for %s: %w", yesterday.Format("2006-01-02"), err)
	}

	table, err := s.loadRecipientTable(ctx)
	if err != nil {
		return nil, err
	}

	rep := &RunReport{}
	groups := make(map[string][]digestEntry)
	var order []string

	for _, sub := range subs {
		serial := sub.Serial()
		def, ok := mapping.ByRole(sub.Role())
		if !ok {
			s.logger.WithField("serial", serial).Debug("Skipping submission with unknown respondent role.")
			rep.Skipped++
			continue
		}
		row, err := report.Transform(serial, sub, def)
		if err != nil {
			s.logger.WithField("serial", serial).WithError(err).Error("Failed to transform submission.")
			rep.Failures = append(rep.Failures, report.ItemFailure{Serial: serial, Err: err})
			continue
		}
		rep.Transformed++

		address := table.Resolve(row.Get(mapping.ColumnAZIdent))
		row.Set(mapping.ColumnEmail, address)

		cpr := row.Get(mapping.ColumnChildCPR)
		if _, seen := groups[cpr]; !seen {
			order = append(order, cpr)
		}
		groups[cpr] = append(groups[cpr], digestEntry{row: row, def: def, address: address})
	}

	for _, cpr := range order {
		entries := groups[cpr]
		sections := make([]string, 0, len(entries))
		for _, entry := range entries {
			sections = append(sections, report.DigestSection(entry.row, entry.def))
		}
		// Entries are newest first; the group mails to the most recent
		// submission's resolved address.
		msg := mail.Message{
			From:     s.cfg.MailFrom,
			To:       entries[0].address,
			Subject:  s.cfg.MailSubject,
			HTMLBody: report.FormatSubjectEmail(cpr, sections),
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			s.logger.WithField("to", msg.To).WithError(err).Error("Failed to send digest mail.")
			rep.MailFailures = append(rep.MailFailures, MailFailure{CPR: cpr, Err: err})
			continue
		}
		rep.Sent++
	}
	return rep, nil
}

func (s *ReportService) loadRecipientTable(ctx context.Context) (*recipients.Table, error) {
	raw, err := s.library.Download(ctx, s.cfg.Folder, s.cfg.RecipientsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to download recipient workbook %q: %w", s.cfg.RecipientsFile, err)
	}
	parsed, err := excel.ParseRecipientSheet(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipient workbook %q: %w", s.cfg.RecipientsFile, err)
	}
	table := recipients.NewTable(s.cfg.Policy, s.cfg.FallbackEmail)
	for _, r := range parsed {
		table.Add(r.Ident, r.Email)
	}
	return table, nil
}

func (s *ReportService) logFailures(log *logrus.Entry, failures []report.ItemFailure) {
	for _, f := range failures {
		log.WithField("serial", f.Serial).WithError(f.Err).Error("Failed to transform submission.")
	}
}

func rowsToCells(def *mapping.Definition, rows []*report.Row) [][]string {
	cols := def.Columns()
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = row.Get(col)
		}
		out[i] = cells
	}
	return out
}

func containsFile(files []string, name string) bool {
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
