package tripview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/npcoderes/GTS-sub001/internal/domain/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTrips() []models.Trip {
	return []models.Trip{
		{
			ID: 1, Status: models.StatusPending,
			Driver: 10, DriverDetails: models.DriverDetails{FullName: "Arun Mishra"},
			Vehicle: 100, VehicleDetails: models.VehicleDetails{RegistrationNo: "MH12AB0001"},
			CreatedAt: ts("2025-03-01T09:00:00Z"),
		},
		{
			ID: 2, Status: models.StatusInTransit,
			Driver: 11, DriverDetails: models.DriverDetails{FullName: "Sunil Pawar"},
			Vehicle: 101, VehicleDetails: models.VehicleDetails{RegistrationNo: "MH12AB0002"},
			CreatedAt: ts("2025-03-02T12:00:00Z"),
		},
		{
			ID: 3, Status: models.StatusCompleted,
			Driver: 10, DriverDetails: models.DriverDetails{FullName: "Arun Mishra"},
			Vehicle: 101, VehicleDetails: models.VehicleDetails{RegistrationNo: "MH12AB0002"},
			CreatedAt: ts("2025-03-03T18:30:00Z"),
		},
		{
			ID: 4, Status: models.StatusCancelled,
			Driver: 12, DriverDetails: models.DriverDetails{FullName: "Rakesh Jadhav"},
			Vehicle: 102, VehicleDetails: models.VehicleDetails{RegistrationNo: "MH14XY0009"},
			CreatedAt: ts("2025-03-05T07:45:00Z"),
		},
		{
			ID: 5, Status: models.StatusInTransit,
			Driver: 10, DriverDetails: models.DriverDetails{FullName: "Arun Mishra"},
			Vehicle: 100, VehicleDetails: models.VehicleDetails{RegistrationNo: "MH12AB0001"},
			CreatedAt: ts("2025-03-10T15:00:00Z"),
		},
	}
}

func tripIDs(trips []models.Trip) []int64 {
	out := make([]int64, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.ID)
	}
	return out
}

func TestApplyStatusExactMatch(t *testing.T) {
	status := models.StatusInTransit
	got := Criteria{Status: &status}.Apply(sampleTrips())
	assert.Equal(t, []int64{2, 5}, tripIDs(got))
	for _, trip := range got {
		assert.Equal(t, models.StatusInTransit, trip.Status)
	}
}

func TestApplyDriverExactMatch(t *testing.T) {
	driver := int64(10)
	got := Criteria{Driver: &driver}.Apply(sampleTrips())
	assert.Equal(t, []int64{1, 3, 5}, tripIDs(got))
}

func TestApplyVehicleExactMatch(t *testing.T) {
	vehicle := int64(101)
	got := Criteria{Vehicle: &vehicle}.Apply(sampleTrips())
	assert.Equal(t, []int64{2, 3}, tripIDs(got))
}

func TestApplyAllCriteriaIsIntersection(t *testing.T) {
	trips := sampleTrips()
	status := models.StatusInTransit
	driver := int64(10)
	vehicle := int64(100)
	from := ts("2025-03-09T00:00:00Z")
	to := ts("2025-03-11T00:00:00Z")

	combined := Criteria{Status: &status, Driver: &driver, Vehicle: &vehicle, DateFrom: &from, DateTo: &to}.Apply(trips)

	// intersection of the four individually filtered sets
	inAll := map[int64]int{}
	for _, c := range []Criteria{
		{Status: &status},
		{Driver: &driver},
		{Vehicle: &vehicle},
		{DateFrom: &from, DateTo: &to},
	} {
		for _, trip := range c.Apply(trips) {
			inAll[trip.ID]++
		}
	}
	var want []int64
	for _, trip := range trips {
		if inAll[trip.ID] == 4 {
			want = append(want, trip.ID)
		}
	}

	assert.Equal(t, want, tripIDs(combined))
	assert.Equal(t, []int64{5}, tripIDs(combined))
}

func TestApplyEmptyCriteriaKeepsEverything(t *testing.T) {
	trips := sampleTrips()
	got := Criteria{}.Apply(trips)
	assert.Equal(t, tripIDs(trips), tripIDs(got))
}

func TestApplyDateRangeDayBoundaries(t *testing.T) {
	d1 := ts("2025-04-10T00:00:00Z")
	d2 := ts("2025-04-12T00:00:00Z")

	beforeStart := models.Trip{ID: 1, CreatedAt: ts("2025-04-10T00:00:00Z").Add(-time.Millisecond)}
	afterEnd := models.Trip{ID: 2, CreatedAt: ts("2025-04-12T23:59:59.999Z").Add(time.Millisecond)}
	noon := models.Trip{ID: 3, CreatedAt: ts("2025-04-11T12:00:00Z")}

	got := Criteria{DateFrom: &d1, DateTo: &d2}.Apply([]models.Trip{beforeStart, afterEnd, noon})
	assert.Equal(t, []int64{3}, tripIDs(got))
}

func TestApplyDateRangeExcludesExactStartOfDay(t *testing.T) {
	d1 := ts("2025-04-10T00:00:00Z")
	d2 := ts("2025-04-10T00:00:00Z")
	atMidnight := models.Trip{ID: 1, CreatedAt: d1}

	got := Criteria{DateFrom: &d1, DateTo: &d2}.Apply([]models.Trip{atMidnight})
	assert.Empty(t, got)
}

func TestApplyHalfOpenDateRangeIgnored(t *testing.T) {
	d1 := ts("2025-04-10T00:00:00Z")
	trips := sampleTrips()

	got := Criteria{DateFrom: &d1}.Apply(trips)
	assert.Equal(t, tripIDs(trips), tripIDs(got))
}

func TestCriteriaEmpty(t *testing.T) {
	assert.True(t, Criteria{}.Empty())

	d1 := ts("2025-04-10T00:00:00Z")
	assert.True(t, Criteria{DateFrom: &d1}.Empty())

	status := models.StatusPending
	assert.False(t, Criteria{Status: &status}.Empty())
}
