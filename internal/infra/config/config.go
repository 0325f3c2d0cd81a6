package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Default artifact names in the report folder.
const (
	defaultYouthWorkbook      = "Center for trivsel - ESQ besvarelser fra unge.xlsx"
	defaultParentWorkbook     = "Center for trivsel - ESQ besvarelser fra forældre.xlsx"
	defaultRecipientsWorkbook = "Godkendte emails.xlsx"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL string
	FormType    string

	SharePointSiteURL  string
	SharePointLibrary  string
	SharePointFolder   string
	SharePointUsername string
	SharePointPassword string

	YouthWorkbook      string
	ParentWorkbook     string
	RecipientsWorkbook string

	SMTPHost      string
	SMTPPort      int
	MailFrom      string
	FallbackEmail string

	CronSpecDaily string
	LogLevel      string
	Environment   string
}

// Load reads configuration from environment variables and .env file (if
// present). godotenv will not override variables already set in the
// environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}

	required := []struct {
		name   string
		target *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"FORM_TYPE", &cfg.FormType},
		{"SHAREPOINT_SITE_URL", &cfg.SharePointSiteURL},
		{"SHAREPOINT_USERNAME", &cfg.SharePointUsername},
		{"SHAREPOINT_PASSWORD", &cfg.SharePointPassword},
		{"SMTP_HOST", &cfg.SMTPHost},
		{"MAIL_FROM", &cfg.MailFrom},
		{"FALLBACK_EMAIL", &cfg.FallbackEmail},
	}
	for _, v := range required {
		*v.target = os.Getenv(v.name)
		if *v.target == "" {
			return nil, fmt.Errorf("%s is not set", v.name)
		}
	}

	cfg.SharePointLibrary = os.Getenv("SHAREPOINT_LIBRARY")
	if cfg.SharePointLibrary == "" {
		cfg.SharePointLibrary = "Delte dokumenter"
	}
	cfg.SharePointFolder = os.Getenv("SHAREPOINT_FOLDER")
	if cfg.SharePointFolder == "" {
		cfg.SharePointFolder = "General/ESQ"
	}

	cfg.YouthWorkbook = os.Getenv("YOUTH_WORKBOOK")
	if cfg.YouthWorkbook == "" {
		cfg.YouthWorkbook = defaultYouthWorkbook
	}
	cfg.ParentWorkbook = os.Getenv("PARENT_WORKBOOK")
	if cfg.ParentWorkbook == "" {
		cfg.ParentWorkbook = defaultParentWorkbook
	}
	cfg.RecipientsWorkbook = os.Getenv("RECIPIENTS_WORKBOOK")
	if cfg.RecipientsWorkbook == "" {
		cfg.RecipientsWorkbook = defaultRecipientsWorkbook
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		cfg.SMTPPort = 25
	} else {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}

	cfg.CronSpecDaily = os.Getenv("CRON_SPEC_DAILY")
	if cfg.CronSpecDaily == "" {
		cfg.CronSpecDaily = "0 7 * * *" // Default: 07:00 daily
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
