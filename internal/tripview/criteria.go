package tripview

import (
	"time"

	"github.com/npcoderes/GTS-sub001/internal/domain/models"
	"github.com/npcoderes/GTS-sub001/internal/utils"
)

// Criteria is the set of dashboard filters. A nil field means "no narrowing"
// for that stage; the four stages combine with logical AND. The date range
// only narrows when both bounds are present.
type Criteria struct {
	Status   *models.TripStatus
	Driver   *int64
	Vehicle  *int64
	DateFrom *time.Time
	DateTo   *time.Time
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.Status == nil && c.Driver == nil && c.Vehicle == nil &&
		(c.DateFrom == nil || c.DateTo == nil)
}

// Apply narrows trips stage by stage. Matching is exact for status, driver
// and vehicle. Date containment compares created_at strictly after the start
// of the range's first day and strictly before the end of its last day.
func (c Criteria) Apply(trips []models.Trip) []models.Trip {
	out := trips

	if c.Status != nil {
		out = keep(out, func(t models.Trip) bool { return t.Status == *c.Status })
	}
	if c.Driver != nil {
		out = keep(out, func(t models.Trip) bool { return t.Driver == *c.Driver })
	}
	if c.Vehicle != nil {
		out = keep(out, func(t models.Trip) bool { return t.Vehicle == *c.Vehicle })
	}
	if c.DateFrom != nil && c.DateTo != nil {
		start := utils.StartOfDay(*c.DateFrom)
		end := utils.EndOfDay(*c.DateTo)
		out = keep(out, func(t models.Trip) bool {
			return t.CreatedAt.After(start) && t.CreatedAt.Before(end)
		})
	}

	return out
}

func keep(trips []models.Trip, pred func(models.Trip) bool) []models.Trip {
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
