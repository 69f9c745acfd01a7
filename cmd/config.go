package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// IncludeAdminsInBulkToggle extends cohort eligibility toggles to admin
	// members. Off by default; admins usually keep their own window.
	IncludeAdminsInBulkToggle bool

	// PendingReminderAfter is how long an order may sit in pending before
	// the reminder job starts logging it.
	PendingReminderAfter time.Duration
}
