package roster

import (
	"testing"

	"pgroster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-01 is a Tuesday.
const tuesdayStart = "2026-09-01"

func buildRequest(starters ...models.Starter) BuildRequest {
	return BuildRequest{
		Starters:   starters,
		WelcomeDay: 2,
		OnboardDay: 4,
		ElevateDay: 3,
	}
}

func newTestService() *DefaultRosterService {
	return NewDefaultRosterService(DefaultRules())
}

func TestSingleStarterDefaultQuota(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart}))
	require.NoError(t, err)

	// 3 mandatory sessions + 5 default training shifts.
	assert.Len(t, result.Rows, 8)
	assert.Contains(t, result.Summary, "8 shifts for 1 starter(s)")
	assert.Equal(t, 8, result.Stats.MinShifts)
	assert.Equal(t, 1, result.Stats.Starters)

	sessions := 0
	for _, row := range result.Rows {
		if row.Mandatory {
			sessions++
		}
	}
	assert.Equal(t, 3, sessions)
}

func TestMandatorySessionOrdering(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart}))
	require.NoError(t, err)

	dates := map[string]string{}
	for _, row := range result.Rows {
		if row.Mandatory {
			dates[row.Outlet] = row.Date
		}
	}
	require.Len(t, dates, 3)
	// Welcome Day lands on the start date itself when the weekday matches.
	assert.Equal(t, "2026-09-01", dates[SessionWelcomeDay])
	assert.Equal(t, "2026-09-03", dates[SessionOnboarding])
	assert.Equal(t, "2026-09-09", dates[SessionElevateTraining])
	assert.Less(t, dates[SessionWelcomeDay], dates[SessionOnboarding])
	assert.Less(t, dates[SessionOnboarding], dates[SessionElevateTraining])
}

func TestCohortSharesSessionDates(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest(
		models.Starter{Name: "Alice", StartDate: tuesdayStart},
		models.Starter{Name: "Bob", StartDate: tuesdayStart},
	))
	require.NoError(t, err)

	byStarter := map[string]map[string]string{}
	for _, row := range result.Rows {
		if !row.Mandatory {
			continue
		}
		if byStarter[row.Starter] == nil {
			byStarter[row.Starter] = map[string]string{}
		}
		byStarter[row.Starter][row.Outlet] = row.Date
	}
	assert.Equal(t, byStarter["Alice"], byStarter["Bob"])
}

func TestStartDateOnNonWorkingDayIsNormalized(t *testing.T) {
	svc := newTestService()
	// 2026-09-07 is a Monday, the non-working day.
	result, err := svc.BuildRoster(buildRequest(models.Starter{Name: "Cara", StartDate: "2026-09-07"}))
	require.NoError(t, err)

	for _, row := range result.Rows {
		if row.Outlet == SessionWelcomeDay {
			// Normalized to Tuesday 2026-09-08, which matches welcomeDay=2.
			assert.Equal(t, "2026-09-08", row.Date)
		}
	}
}

func TestBlackoutOnFirstTrainingDay(t *testing.T) {
	svc := newTestService()
	// 2026-09-10 is the first working day after Elevate Training for a
	// 2026-09-01 starter, i.e. the first candidate training day.
	result, err := svc.BuildRoster(buildRequest(models.Starter{
		Name:          "Alice",
		StartDate:     tuesdayStart,
		BlackoutDates: []string{"2026-09-10"},
	}))
	require.NoError(t, err)

	later := false
	for _, row := range result.Rows {
		assert.NotEqual(t, "2026-09-10", row.Date)
		if !row.Mandatory && row.Date == "2026-09-11" {
			later = true
		}
	}
	assert.True(t, later, "a later working day should carry the displaced shift")
	assert.Greater(t, result.Conflicts.DateConflicts, 0)
}

func TestEmptyStarterList(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest())
	require.Error(t, err)
	assert.Nil(t, result)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInvalidInputs(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		req  BuildRequest
	}{
		{"blank name", buildRequest(models.Starter{Name: "   ", StartDate: tuesdayStart})},
		{"missing start date", buildRequest(models.Starter{Name: "Alice"})},
		{"malformed start date", buildRequest(models.Starter{Name: "Alice", StartDate: "01/09/2026"})},
		{"malformed birth date", buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart, BirthDate: "nope"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BuildRoster(tc.req)
			assert.Error(t, err)
		})
	}

	req := buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart})
	req.WelcomeDay = 7
	_, err := svc.BuildRoster(req)
	assert.Error(t, err)

	req = buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart})
	req.OnboardDay = -1
	_, err = svc.BuildRoster(req)
	assert.Error(t, err)
}

func TestMalformedBlackoutDatesAreDropped(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest(models.Starter{
		Name:          "Alice",
		StartDate:     tuesdayStart,
		BlackoutDates: []string{"not-a-date", "2026/09/10"},
	}))
	require.NoError(t, err)
	assert.Len(t, result.Rows, 8)
}

func TestOutletConflictOnRestrictedOutlet(t *testing.T) {
	svc := newTestService()
	req := buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart})
	// Only Dining, which operates Friday and Saturday, carries quota. The
	// cursor starts on a Thursday, so the first candidate scan fails and a
	// substitute day has to be found.
	req.Quotas = []models.QuotaSpec{
		{Outlet: OutletSouthFloor, Count: 0},
		{Outlet: OutletSouthBar, Count: 0},
		{Outlet: OutletOasisFood, Count: 0},
		{Outlet: OutletOasisBar, Count: 0},
		{Outlet: OutletDining, Count: 1},
	}
	req.MinShifts = 4

	result, err := svc.BuildRoster(req)
	require.NoError(t, err)
	assert.Greater(t, result.Conflicts.OutletConflicts, 0)

	for _, row := range result.Rows {
		if row.Outlet == OutletDining {
			d, perr := parseDate(row.Date)
			require.NoError(t, perr)
			assert.Contains(t, []string{"Friday", "Saturday"}, d.Weekday().String())
		}
	}
}

func TestIdempotenceWithoutShuffle(t *testing.T) {
	svc := newTestService()
	req := buildRequest(
		models.Starter{Name: "Alice", StartDate: tuesdayStart},
		models.Starter{Name: "Bob", StartDate: tuesdayStart, BlackoutDates: []string{"2026-09-12"}},
		models.Starter{Name: "Cara", StartDate: "2026-09-07"},
	)

	first, err := svc.BuildRoster(req)
	require.NoError(t, err)
	second, err := svc.BuildRoster(req)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Conflicts, second.Conflicts)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestFallbackFillsShortfall(t *testing.T) {
	svc := newTestService()
	req := buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart})
	// Quotas only cover 5 training shifts; the rest must come from the
	// fallback preference order.
	req.MinShifts = 10

	result, err := svc.BuildRoster(req)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 10)
	assert.Equal(t, 1, result.Conflicts.FallbackStarters)
}

func TestDuplicateNamesAliasState(t *testing.T) {
	svc := newTestService()
	result, err := svc.BuildRoster(buildRequest(
		models.Starter{Name: "Alice", StartDate: tuesdayStart},
		models.Starter{Name: "Alice", StartDate: tuesdayStart},
	))
	require.NoError(t, err)

	// Two records with the same name share one cursor, so the build behaves
	// as if there were a single starter.
	assert.Equal(t, 1, result.Stats.Starters)
	assert.Len(t, result.Rows, 8)
}
