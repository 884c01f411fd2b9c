package roster

import (
	"strings"

	"pgroster/models"
	"pgroster/utils"

	"go.uber.org/zap"
)

// normalize validates and canonicalizes the request. Any error returned here
// aborts the whole build; everything it can sanitize instead, it does.
func (s *DefaultRosterService) normalize(req BuildRequest) ([]models.Starter, []models.QuotaSpec, int, error) {
	if len(req.Starters) == 0 {
		return nil, nil, 0, validationErrorf("starter list is empty")
	}
	for _, day := range []struct {
		name  string
		value int
	}{
		{"welcomeDay", req.WelcomeDay},
		{"onboardDay", req.OnboardDay},
		{"elevateDay", req.ElevateDay},
	} {
		if day.value < 0 || day.value > 6 {
			return nil, nil, 0, validationErrorf("%s must be a weekday between 0 and 6, got %d", day.name, day.value)
		}
	}

	logger := utils.GetLogger()
	starters := make([]models.Starter, 0, len(req.Starters))
	for i, raw := range req.Starters {
		st := raw
		st.Name = strings.TrimSpace(st.Name)
		if st.Name == "" {
			return nil, nil, 0, validationErrorf("starter %d has a blank name", i+1)
		}
		if st.StartDate == "" {
			return nil, nil, 0, validationErrorf("starter %q is missing a start date", st.Name)
		}
		if _, err := parseDate(st.StartDate); err != nil {
			return nil, nil, 0, validationErrorf("starter %q: %v", st.Name, err)
		}
		if st.BirthDate != "" {
			if _, err := parseDate(st.BirthDate); err != nil {
				return nil, nil, 0, validationErrorf("starter %q: %v", st.Name, err)
			}
		}
		// Malformed blackout entries are dropped, not rejected. Logged so the
		// silent drop is at least observable.
		var blackouts []string
		for _, bd := range st.BlackoutDates {
			if _, err := parseDate(bd); err != nil {
				logger.Warn("dropping malformed blackout date",
					zap.String("starter", st.Name), zap.String("entry", bd))
				continue
			}
			blackouts = append(blackouts, bd)
		}
		st.BlackoutDates = blackouts
		starters = append(starters, st)
	}

	quotas := s.normalizeQuotas(req.Quotas)

	target := req.MinShifts
	if target <= 0 {
		target = len(s.Rules.Sessions)
		for _, q := range quotas {
			target += q.Count
		}
	}

	return starters, quotas, target, nil
}

// normalizeQuotas starts from the default quota per outlet, overrides counts
// present in the input, and floors negative or malformed counts to the
// configured per-outlet minimum. Unrecognized outlet names are ignored.
func (s *DefaultRosterService) normalizeQuotas(input []models.QuotaSpec) []models.QuotaSpec {
	override := make(map[string]int, len(input))
	for _, q := range input {
		override[strings.TrimSpace(q.Outlet)] = q.Count
	}

	quotas := make([]models.QuotaSpec, 0, len(s.Rules.Outlets))
	for _, o := range s.Rules.Outlets {
		count := o.DefaultQuota
		if v, ok := override[o.Name]; ok {
			count = v
		}
		if count < o.MinQuota {
			count = o.MinQuota
		}
		quotas = append(quotas, models.QuotaSpec{Outlet: o.Name, Count: count})
	}
	return quotas
}
