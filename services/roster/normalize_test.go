package roster

import (
	"testing"

	"pgroster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuotasDefaults(t *testing.T) {
	svc := newTestService()
	quotas := svc.normalizeQuotas(nil)

	require.Len(t, quotas, len(svc.Rules.Outlets))
	total := 0
	for i, q := range quotas {
		assert.Equal(t, svc.Rules.Outlets[i].Name, q.Outlet)
		assert.Equal(t, svc.Rules.Outlets[i].DefaultQuota, q.Count)
		total += q.Count
	}
	assert.Equal(t, 5, total)
}

func TestNormalizeQuotasOverridesAndFloors(t *testing.T) {
	svc := newTestService()
	quotas := svc.normalizeQuotas([]models.QuotaSpec{
		{Outlet: OutletSouthFloor, Count: 4},
		{Outlet: OutletSouthBar, Count: -3},    // negative: floored to the minimum
		{Outlet: "Rooftop", Count: 9},          // unknown outlet: ignored
		{Outlet: " " + OutletDining, Count: 2}, // name is trimmed before matching
	})

	byName := map[string]int{}
	for _, q := range quotas {
		byName[q.Outlet] = q.Count
	}
	assert.Equal(t, 4, byName[OutletSouthFloor])
	assert.Equal(t, 0, byName[OutletSouthBar])
	assert.Equal(t, 2, byName[OutletDining])
	assert.NotContains(t, byName, "Rooftop")
	assert.Len(t, quotas, len(svc.Rules.Outlets))
}

func TestMinShiftsDefaultComputation(t *testing.T) {
	svc := newTestService()

	_, _, target, err := svc.normalize(buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart}))
	require.NoError(t, err)
	assert.Equal(t, 8, target) // 3 sessions + 5 quota shifts

	req := buildRequest(models.Starter{Name: "Alice", StartDate: tuesdayStart})
	req.MinShifts = 11
	_, _, target, err = svc.normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 11, target)

	// Non-positive overrides are sanitized back to the computed default.
	req.MinShifts = -2
	_, _, target, err = svc.normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 8, target)
}

func TestNormalizeTrimsNames(t *testing.T) {
	svc := newTestService()
	starters, _, _, err := svc.normalize(buildRequest(models.Starter{Name: "  Alice  ", StartDate: tuesdayStart}))
	require.NoError(t, err)
	require.Len(t, starters, 1)
	assert.Equal(t, "Alice", starters[0].Name)
}
