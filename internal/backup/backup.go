// Package backup writes encrypted snapshots of the log database to a local
// directory, with optional upload to S3-compatible storage.
package backup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Client is the slice of the S3 API the manager uses; tests supply fakes.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds optional S3-compatible upload configuration. Leave the
// bucket empty to keep backups local only.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Config holds backup settings. Password must be non-empty for backups to
// run; Retention counts the newest local snapshots to keep.
type Config struct {
	Dir       string
	DBPath    string
	Password  string
	Retention int
	S3        S3Config
}

const snapshotSuffix = ".db.enc"

// Manager produces encrypted database snapshots on demand.
type Manager struct {
	cfg    Config
	db     *sql.DB
	client s3Client
	logger *slog.Logger
}

func NewManager(cfg Config, db *sql.DB, logger *slog.Logger) *Manager {
	m := &Manager{cfg: cfg, db: db, logger: logger}
	if cfg.S3.Bucket != "" && cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		m.client = newS3Client(cfg.S3)
	}
	return m
}

func newS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Enabled reports whether backups are configured.
func (m *Manager) Enabled() bool {
	return m.cfg.Password != ""
}

// Run checkpoints the WAL, encrypts a copy of the database file, and writes
// it to the backup directory. Returns the snapshot filename.
func (m *Manager) Run(ctx context.Context) (string, error) {
	if !m.Enabled() {
		return "", fmt.Errorf("backup not configured: password missing")
	}
	if err := os.MkdirAll(m.cfg.Dir, 0700); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	if _, err := m.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return "", fmt.Errorf("wal checkpoint: %w", err)
	}
	plaintext, err := os.ReadFile(m.cfg.DBPath)
	if err != nil {
		return "", fmt.Errorf("read database: %w", err)
	}

	encrypted, err := Encrypt(plaintext, m.cfg.Password)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	name := fmt.Sprintf("skcclog-%s%s", time.Now().UTC().Format("20060102T150405Z"), snapshotSuffix)
	path := filepath.Join(m.cfg.Dir, name)
	if err := os.WriteFile(path, encrypted, 0600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	m.logger.Info("backup written", "file", name, "bytes", len(encrypted))

	if m.client != nil {
		if err := m.upload(ctx, name, path); err != nil {
			m.logger.Error("backup upload failed", "file", name, "error", err)
		}
	}
	if err := m.cleanup(ctx); err != nil {
		m.logger.Error("backup cleanup failed", "error", err)
	}
	return name, nil
}

func (m *Manager) upload(ctx context.Context, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat snapshot: %w", err)
	}
	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.cfg.S3.Bucket),
		Key:           aws.String(name),
		Body:          f,
		ContentLength: aws.Int64(stat.Size()),
	})
	if err != nil {
		return fmt.Errorf("upload to s3: %w", err)
	}
	return nil
}

// List returns local snapshot filenames, newest first. The timestamped
// naming makes reverse-lexicographic order newest-first.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), snapshotSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Restore decrypts a snapshot and writes it over the database file. The
// caller must have closed the database; stale WAL and SHM files are removed.
func (m *Manager) Restore(name string) error {
	if !m.Enabled() {
		return fmt.Errorf("backup not configured: password missing")
	}
	encrypted, err := os.ReadFile(filepath.Join(m.cfg.Dir, filepath.Base(name)))
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	plaintext, err := Decrypt(encrypted, m.cfg.Password)
	if err != nil {
		return fmt.Errorf("decrypt snapshot: %w", err)
	}
	if err := os.WriteFile(m.cfg.DBPath, plaintext, 0600); err != nil {
		return fmt.Errorf("replace database: %w", err)
	}
	os.Remove(m.cfg.DBPath + "-wal")
	os.Remove(m.cfg.DBPath + "-shm")
	return nil
}

// cleanup deletes local snapshots beyond the retention count, and their S3
// copies when upload is configured.
func (m *Manager) cleanup(ctx context.Context) error {
	if m.cfg.Retention <= 0 {
		return nil
	}
	names, err := m.List()
	if err != nil {
		return err
	}
	for _, name := range names[min(len(names), m.cfg.Retention):] {
		if err := os.Remove(filepath.Join(m.cfg.Dir, name)); err != nil {
			return fmt.Errorf("remove snapshot %s: %w", name, err)
		}
		if m.client != nil {
			if _, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(m.cfg.S3.Bucket),
				Key:    aws.String(name),
			}); err != nil {
				m.logger.Error("delete s3 snapshot failed", "file", name, "error", err)
			}
		}
		m.logger.Info("expired backup removed", "file", name)
	}
	return nil
}
