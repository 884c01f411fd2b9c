package roster

import (
	"math/rand"
	"time"

	"pgroster/models"

	"github.com/google/uuid"
)

// BuildRequest carries everything one roster build needs. Weekdays follow
// time.Weekday numbering (0 = Sunday). MinShifts <= 0 means "use the
// computed default": one row per mandatory session plus the quota total.
type BuildRequest struct {
	Starters   []models.Starter
	Quotas     []models.QuotaSpec
	WelcomeDay int
	OnboardDay int
	ElevateDay int
	Shuffle    bool
	MinShifts  int
}

// RosterService builds rosters.
type RosterService interface {
	BuildRoster(req BuildRequest) (*models.RosterResult, error)
}

// DefaultRosterService is the production implementation. One instance
// serves concurrent requests, so it holds no mutable state: every build
// that requests shuffling gets its own rand.Rand. Seed is an optional
// override so tests can make shuffled builds reproducible.
type DefaultRosterService struct {
	Rules Rules
	Seed  func() int64
}

func NewDefaultRosterService(rules Rules) *DefaultRosterService {
	return &DefaultRosterService{Rules: rules}
}

// BuildRoster runs the five stages in order: normalization, mandatory
// session placement, the primary allocation loop, the fallback pass, and
// finalization. All working state lives in a per-call buildState; nothing
// is shared between invocations.
func (s *DefaultRosterService) BuildRoster(req BuildRequest) (*models.RosterResult, error) {
	starters, quotas, target, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if req.Shuffle {
		seed := time.Now().UnixNano()
		if s.Seed != nil {
			seed = s.Seed()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	b := newBuildState(s.Rules, rng, quotas, target)
	b.registerStarters(starters)
	b.placeSessions([]time.Weekday{
		time.Weekday(req.WelcomeDay),
		time.Weekday(req.OnboardDay),
		time.Weekday(req.ElevateDay),
	})
	b.allocate()
	b.fallback()
	rows, summary := b.finalize()

	return &models.RosterResult{
		RunID:     uuid.New().String(),
		Rows:      rows,
		Conflicts: b.conflicts,
		Summary:   summary,
		Stats: models.RosterStats{
			Starters:   len(b.order),
			MinShifts:  target,
			WelcomeDay: req.WelcomeDay,
			OnboardDay: req.OnboardDay,
			ElevateDay: req.ElevateDay,
		},
	}, nil
}
