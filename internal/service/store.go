package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"fan-globe/internal/models"
	"fan-globe/internal/observability"
	"fan-globe/internal/repository"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// StorageKey is the key the submission list is persisted under.
const StorageKey = "cc_fan_globe_submissions"

// SubmissionStore is the ordered, most-recent-first list of pins. Every
// mutation is written through to the key/value store before it becomes
// visible.
//
// The list is unbounded; callers that need a cap should add it here.
type SubmissionStore struct {
	kv      repository.KeyValueStore
	metrics *observability.Metrics
	logger  zerolog.Logger

	mu   sync.RWMutex
	rows []models.Submission
}

// NewSubmissionStore creates a store and loads whatever is persisted.
func NewSubmissionStore(ctx context.Context, kv repository.KeyValueStore, metrics *observability.Metrics, logger zerolog.Logger) *SubmissionStore {
	s := &SubmissionStore{
		kv:      kv,
		metrics: metrics,
		logger:  logger.With().Str("component", "store").Logger(),
	}
	s.Reload(ctx)
	return s
}

// Load reads the persisted list. Missing, empty or malformed data yields an
// empty list; it is never an error.
func (s *SubmissionStore) Load(ctx context.Context) []models.Submission {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("cannot read submissions, starting empty")
		}
		return []models.Submission{}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []models.Submission{}
	}

	var rows []models.Submission
	if err := json.Unmarshal(data, &rows); err != nil {
		s.logger.Warn().Err(err).Int("bytes", len(data)).Msg("stored submissions are corrupt, resetting")
		return []models.Submission{}
	}
	if rows == nil {
		rows = []models.Submission{}
	}
	return rows
}

// Reload replaces the in-memory list with the persisted one, picking up
// edits made outside this process.
func (s *SubmissionStore) Reload(ctx context.Context) {
	rows := s.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
	s.updateGauge()
}

// Append inserts row at the head of the list.
func (s *SubmissionStore) Append(ctx context.Context, row models.Submission) error {
	return s.AppendMany(ctx, []models.Submission{row})
}

// AppendMany inserts rows at the head of the list, keeping their relative
// order. Either every row is persisted or none is.
func (s *SubmissionStore) AppendMany(ctx context.Context, rows []models.Submission) error {
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.rows)+len(rows))
	for _, r := range s.rows {
		seen[r.ID] = struct{}{}
	}
	for _, r := range rows {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	next := make([]models.Submission, 0, len(rows)+len(s.rows))
	next = append(next, rows...)
	next = append(next, s.rows...)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("service: failed to encode submissions: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("service: failed to persist submissions: %w", err)
	}

	s.rows = next
	s.updateGauge()
	return nil
}

// All returns a copy of the list, most recent first.
func (s *SubmissionStore) All() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Submission, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len returns the number of stored submissions.
func (s *SubmissionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Leaderboard aggregates the current submissions by place.
func (s *SubmissionStore) Leaderboard() []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BuildLeaderboard(s.rows)
}

func (s *SubmissionStore) updateGauge() {
	if s.metrics != nil {
		s.metrics.Pins.Set(float64(len(s.rows)))
	}
}
