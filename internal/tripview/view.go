package tripview

import (
	"context"
	"sync"

	"github.com/npcoderes/GTS-sub001/internal/domain"
	"github.com/npcoderes/GTS-sub001/internal/domain/models"
	"github.com/npcoderes/GTS-sub001/internal/fleetapi"
)

// TripLister abstracts the fleet API client for the view.
type TripLister interface {
	ListTrips(ctx context.Context, page, pageSize int) (fleetapi.TripPage, error)
}

// Summary holds the three dashboard counters, computed over the filtered set.
type Summary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Snapshot is a consistent read of the view for rendering.
type Snapshot struct {
	Trips          []models.Trip     `json:"trips"`
	Pagination     domain.Pagination `json:"pagination"`
	Summary        Summary           `json:"summary"`
	DriverOptions  []domain.Option   `json:"driverOptions"`
	VehicleOptions []domain.Option   `json:"vehicleOptions"`
	Loading        bool              `json:"loading"`
}

// View is the trip-list view state: the raw page as last fetched, the
// derived filtered subset, filter criteria and pagination. Filtering covers
// only the page currently held, never the full upstream collection, so the
// counters under-represent the dataset when more trips exist upstream.
type View struct {
	mu       sync.Mutex
	lister   TripLister
	criteria Criteria

	raw        []models.Trip
	filtered   []models.Trip
	pagination domain.Pagination
	loading    bool

	// generation guards overlapping loads: a completion whose generation is
	// no longer current lost the race to a newer load and is discarded.
	generation uint64
}

func New(lister TripLister) *View {
	return &View{lister: lister, pagination: domain.Pagination{Page: 1, PageSize: 10}}
}

// LoadPage fetches one upstream page and replaces the raw set. On failure
// the raw set resets to empty rather than retaining stale data; the filtered
// set is re-derived and the loading flag cleared either way.
func (v *View) LoadPage(ctx context.Context, page, pageSize int) error {
	v.mu.Lock()
	v.loading = true
	v.generation++
	gen := v.generation
	lister := v.lister
	v.mu.Unlock()

	result, err := lister.ListTrips(ctx, page, pageSize)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		// a later load already completed; drop this stale result
		return err
	}

	v.loading = false
	if err != nil {
		v.raw = nil
		v.pagination = domain.Pagination{Page: page, PageSize: pageSize}
		v.recompute()
		return err
	}

	v.raw = result.Items
	v.pagination = domain.Pagination{Page: page, PageSize: pageSize, Total: result.Total}
	v.recompute()
	return nil
}

// ChangePage re-fetches with the requested page; criteria persist and apply
// only to the newly fetched data.
func (v *View) ChangePage(ctx context.Context, page, pageSize int) error {
	return v.LoadPage(ctx, page, pageSize)
}

// SetCriteria replaces all four filters and re-derives the filtered set.
func (v *View) SetCriteria(c Criteria) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria = c
	v.recompute()
}

// ClearCriteria resets every filter and re-derives.
func (v *View) ClearCriteria() {
	v.SetCriteria(Criteria{})
}

// Criteria returns the active filter set.
func (v *View) Criteria() Criteria {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.criteria
}

// Snapshot renders the current state. The returned slices are copies.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	trips := make([]models.Trip, len(v.filtered))
	copy(trips, v.filtered)

	return Snapshot{
		Trips:          trips,
		Pagination:     v.pagination,
		Summary:        summarize(v.filtered),
		DriverOptions:  driverOptions(v.raw),
		VehicleOptions: vehicleOptions(v.raw),
		Loading:        v.loading,
	}
}

// recompute must run under v.mu.
func (v *View) recompute() {
	if v.criteria.Empty() {
		v.filtered = v.raw
		return
	}
	v.filtered = v.criteria.Apply(v.raw)
}

func summarize(trips []models.Trip) Summary {
	s := Summary{Total: len(trips)}
	for _, t := range trips {
		if !t.Status.Terminal() {
			s.Active++
		}
		if t.Status == models.StatusCompleted {
			s.Completed++
		}
	}
	return s
}

// driverOptions scans the raw set (not the filtered one) for distinct
// drivers, keeping first-occurrence order.
func driverOptions(trips []models.Trip) []domain.Option {
	seen := map[int64]bool{}
	out := []domain.Option{}
	for _, t := range trips {
		if seen[t.Driver] {
			continue
		}
		seen[t.Driver] = true
		out = append(out, domain.Option{Value: t.Driver, Label: t.DriverDetails.FullName})
	}
	return out
}

func vehicleOptions(trips []models.Trip) []domain.Option {
	seen := map[int64]bool{}
	out := []domain.Option{}
	for _, t := range trips {
		if seen[t.Vehicle] {
			continue
		}
		seen[t.Vehicle] = true
		out = append(out, domain.Option{Value: t.Vehicle, Label: t.VehicleDetails.RegistrationNo})
	}
	return out
}
