package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/garyPenhook/skcclog/internal/model"
)

// Config holds roster service settings.
type Config struct {
	MemberURL       string
	RollURLs        map[string]string // roll type -> URL
	RefreshInterval time.Duration
}

// MemberStore persists the cached membership roster.
type MemberStore interface {
	ReplaceMembers(members []model.Member) error
	Members() ([]model.Member, error)
}

// RollStore persists the cached award rolls.
type RollStore interface {
	ReplaceRoll(rollType string, entries []model.AwardRosterEntry) error
	Roll(rollType string) ([]model.AwardRosterEntry, error)
}

// Service owns the roster snapshots. A refresh fetches and parses the remote
// pages (falling back to the local cache per source), builds new immutable
// snapshots, and atomically swaps the pointers. Readers always observe either
// the previous or the next complete snapshot.
type Service struct {
	cfg        Config
	httpClient *http.Client
	members    MemberStore
	rolls      RollStore
	logger     *slog.Logger

	index atomic.Pointer[Index]
	roll  atomic.Pointer[Roll]

	stopCh  chan struct{}
	stopped chan struct{}
}

// NewService builds a roster service seeded from the local cache; the first
// network refresh happens when Start runs or Refresh is called.
func NewService(cfg Config, members MemberStore, rolls RollStore, logger *slog.Logger) *Service {
	if cfg.MemberURL == "" {
		cfg.MemberURL = "https://www.skccgroup.com/membership_data/membership_listing.php"
	}
	if cfg.RollURLs == nil {
		cfg.RollURLs = map[string]string{
			RollCenturion: "https://www.skccgroup.com/membership_data/centurionlist.php",
			RollTribune:   "https://www.skccgroup.com/membership_data/tribunelist.php",
			RollSenator:   "https://www.skccgroup.com/membership_data/senator.php",
		}
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 24 * time.Hour
	}
	s := &Service{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		members:    members,
		rolls:      rolls,
		logger:     logger,
		stopCh:     make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	s.loadFromCache()
	return s
}

// Index returns the current membership snapshot, never nil.
func (s *Service) Index() *Index {
	return s.index.Load()
}

// AwardRoll returns the current award roll snapshot, never nil.
func (s *Service) AwardRoll() *Roll {
	return s.roll.Load()
}

// Start launches the periodic refresh loop.
func (s *Service) Start() {
	go s.run()
}

// Stop halts the refresh loop and waits for it to exit.
func (s *Service) Stop() {
	close(s.stopCh)
	<-s.stopped
}

func (s *Service) run() {
	defer close(s.stopped)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	s.Refresh(ctx)
	cancel()

	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			s.Refresh(ctx)
			cancel()
		}
	}
}

// loadFromCache seeds the snapshots from the local tables so awards work
// offline from the start.
func (s *Service) loadFromCache() {
	members, err := s.members.Members()
	if err != nil {
		s.logger.Warn("load cached roster", "error", err)
	}
	s.index.Store(NewIndex(members))

	var entries []model.AwardRosterEntry
	var loaded []string
	for rollType := range s.cfg.RollURLs {
		rows, err := s.rolls.Roll(rollType)
		if err != nil {
			s.logger.Warn("load cached award roll", "roll", rollType, "error", err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		loaded = append(loaded, rollType)
		entries = append(entries, rows...)
	}
	s.roll.Store(NewRoll(entries, loaded, s.logger))
}

// Refresh fetches the membership roster and award rolls, persists them, and
// swaps in new snapshots. Each source degrades independently: a failed fetch
// keeps that source's previous data.
func (s *Service) Refresh(ctx context.Context) {
	if html, err := s.fetch(ctx, s.cfg.MemberURL); err != nil {
		s.logger.Warn("fetch membership roster", "error", err)
	} else if members := ParseMembers(html); len(members) == 0 {
		s.logger.Warn("membership roster parsed empty, keeping previous snapshot")
	} else {
		if err := s.members.ReplaceMembers(members); err != nil {
			s.logger.Warn("cache membership roster", "error", err)
		}
		s.index.Store(NewIndex(members))
		s.logger.Info("membership roster refreshed", "members", len(members))
	}

	var entries []model.AwardRosterEntry
	var loaded []string
	for rollType, url := range s.cfg.RollURLs {
		rows, err := s.refreshRoll(ctx, rollType, url)
		if err != nil {
			s.logger.Warn("refresh award roll", "roll", rollType, "error", err)
			continue
		}
		loaded = append(loaded, rollType)
		entries = append(entries, rows...)
	}
	s.roll.Store(NewRoll(entries, loaded, s.logger))
}

// refreshRoll fetches one roll, falling back to the cached table when the
// fetch or parse fails.
func (s *Service) refreshRoll(ctx context.Context, rollType, url string) ([]model.AwardRosterEntry, error) {
	html, err := s.fetch(ctx, url)
	if err == nil {
		if rows := ParseAwardRoll(rollType, html); len(rows) > 0 {
			if err := s.rolls.ReplaceRoll(rollType, rows); err != nil {
				s.logger.Warn("cache award roll", "roll", rollType, "error", err)
			}
			return rows, nil
		}
		err = fmt.Errorf("roll page parsed empty")
	}

	rows, cacheErr := s.rolls.Roll(rollType)
	if cacheErr != nil || len(rows) == 0 {
		return nil, fmt.Errorf("fetch roll: %w (no usable cache)", err)
	}
	s.logger.Info("using cached award roll", "roll", rollType, "entries", len(rows))
	return rows, nil
}

func (s *Service) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
