// Package leveling implements the XP progression over the levels ledger.
// Each qualifying message grants 10–25 XP; crossing level*100 promotes the
// user exactly one level and resets XP to zero, no matter how large the gain.
package leveling

import (
	"math/rand"
	"sync"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
)

const (
	minGain = 10
	maxGain = 25
)

// Result describes the outcome of one counted message
type Result struct {
	Record    models.LevelRecord
	Gained    int
	LeveledUp bool
}

// Service owns all mutations of the levels ledger
type Service struct {
	ledger *storage.Ledger[models.LevelRecord]

	rngMu sync.Mutex
	rng   *rand.Rand
}

var (
	service *Service
	once    sync.Once
)

// Init initializes the global leveling service
func Init(ledger *storage.Ledger[models.LevelRecord]) *Service {
	once.Do(func() {
		service = NewService(ledger)
	})
	return service
}

// Get returns the global leveling service
func Get() *Service {
	return service
}

// NewService creates a leveling service over the given ledger
func NewService(ledger *storage.Ledger[models.LevelRecord]) *Service {
	return &Service{
		ledger: ledger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the XP source, used by tests for determinism
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.rng = r
	return s
}

func (s *Service) randGain() int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(maxGain-minGain+1) + minGain
}

// RecordMessage counts one message for (guild, user): increments the message
// counter, grants random XP and performs at most one promotion. The caller
// flushes the ledger afterwards.
func (s *Service) RecordMessage(guildID, userID string) Result {
	gain := s.randGain()
	leveled := false

	rec := s.ledger.Update(guildID, userID, models.NewLevelRecord, func(r models.LevelRecord) models.LevelRecord {
		r.Messages++
		r.XP += gain
		if r.XP >= r.XPNeeded() {
			r.Level++
			r.XP = 0
			leveled = true
		}
		return r
	})

	return Result{Record: rec, Gained: gain, LeveledUp: leveled}
}

// Record returns the stored record for (guild, user) without creating one
func (s *Service) Record(guildID, userID string) (models.LevelRecord, bool) {
	return s.ledger.Get(guildID, userID)
}

// Top returns the n highest ranked users of a guild, by level then residual XP
func (s *Service) Top(guildID string, n int) []storage.Entry[models.LevelRecord] {
	return s.ledger.TopN(guildID, n, func(r models.LevelRecord) int {
		// XP never reaches a million before a promotion resets it, so this
		// composite orders by level first and residual XP second.
		return r.Level*1_000_000 + r.XP
	})
}

// Flush persists the levels document
func (s *Service) Flush() error {
	return s.ledger.Flush()
}
