// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration. Every field has a usable default
// so the binary starts with nothing set except, in practice, SKCC_CALLSIGN.
type Config struct {
	Addr     string `env:"SKCC_ADDR" envDefault:":8480"`
	DBPath   string `env:"SKCC_DB_PATH" envDefault:"skcclog.db"`
	LogLevel string `env:"SKCC_LOG_LEVEL" envDefault:"info"`

	// Operator identity. These seed the settings table on first run and are
	// overridden by anything already saved there.
	Callsign      string `env:"SKCC_CALLSIGN"`
	SKCCNumber    string `env:"SKCC_NUMBER"`
	JoinDate      string `env:"SKCC_JOIN_DATE"`      // YYYYMMDD
	CenturionDate string `env:"SKCC_CENTURION_DATE"` // YYYYMMDD
	TribuneX8Date string `env:"SKCC_TRIBUNE_X8_DATE"`

	RosterURL       string        `env:"SKCC_ROSTER_URL" envDefault:"https://www.skccgroup.com/membership_data/membership_listing.php"`
	CenturionURL    string        `env:"SKCC_CENTURION_URL" envDefault:"https://www.skccgroup.com/operating_awards/centurion/centurion_list.php"`
	TribuneURL      string        `env:"SKCC_TRIBUNE_URL" envDefault:"https://www.skccgroup.com/operating_awards/tribune/tribunelist.php"`
	SenatorURL      string        `env:"SKCC_SENATOR_URL" envDefault:"https://www.skccgroup.com/operating_awards/senator/senator.php"`
	RefreshInterval time.Duration `env:"SKCC_REFRESH_INTERVAL" envDefault:"24h"`

	BackupDir       string `env:"SKCC_BACKUP_DIR" envDefault:"backups"`
	BackupPassword  string `env:"SKCC_BACKUP_PASSWORD"`
	BackupRetention int    `env:"SKCC_BACKUP_RETENTION" envDefault:"7"`

	// Optional S3-compatible mirror for backup snapshots. Backups stay
	// local only while the bucket is unset.
	BackupS3Endpoint  string `env:"SKCC_BACKUP_S3_ENDPOINT"`
	BackupS3Bucket    string `env:"SKCC_BACKUP_S3_BUCKET"`
	BackupS3Region    string `env:"SKCC_BACKUP_S3_REGION" envDefault:"auto"`
	BackupS3AccessKey string `env:"SKCC_BACKUP_S3_ACCESS_KEY"`
	BackupS3SecretKey string `env:"SKCC_BACKUP_S3_SECRET_KEY"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
