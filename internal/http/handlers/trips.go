package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/npcoderes/GTS-sub001/internal/domain"
	"github.com/npcoderes/GTS-sub001/internal/domain/models"
	"github.com/npcoderes/GTS-sub001/internal/http/middleware"
	"github.com/npcoderes/GTS-sub001/internal/services"
	"github.com/npcoderes/GTS-sub001/internal/tripview"
	"github.com/npcoderes/GTS-sub001/internal/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// TripsHandler serves the trip-list view: one upstream page, filtered
// view-side, with summary counters and filter dropdown options. Each request
// derives its response through its own View so concurrent requests cannot
// overwrite each other's criteria; the fleet API client is the only shared
// resource.
type TripsHandler struct {
	Lister tripview.TripLister
}

// GET /api/trips
func (h TripsHandler) List(c *gin.Context) {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	criteria, err := parseCriteria(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	view := tripview.New(h.Lister)
	view.SetCriteria(criteria)
	if loadErr := view.LoadPage(c.Request.Context(), page, pageSize); loadErr != nil {
		utils.LogEvent(middleware.GetRequestID(c), "trips", "load_page", loadErr.Error())
		respondUpstreamFailure(c, loadErr, view.Snapshot())
		return
	}

	c.JSON(http.StatusOK, view.Snapshot())
}

// GET /api/trips/statuses
func (h TripsHandler) Statuses(c *gin.Context) {
	out := make([]gin.H, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		out = append(out, gin.H{"value": s, "color": s.Color()})
	}
	c.JSON(http.StatusOK, gin.H{"statuses": out})
}

// GET /api/trips/manifest
func (h TripsHandler) Manifest(c *gin.Context) {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	criteria, err := parseCriteria(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	view := tripview.New(h.Lister)
	view.SetCriteria(criteria)
	if loadErr := view.LoadPage(c.Request.Context(), page, pageSize); loadErr != nil {
		utils.LogEvent(middleware.GetRequestID(c), "trips", "manifest_load", loadErr.Error())
		RespondDomainError(c, loadErr)
		return
	}

	svc := services.ReportService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, pdfErr := svc.TripManifest(view.Snapshot(), time.Now())
	if pdfErr != nil {
		RespondDomainError(c, domain.InternalError{Msg: "manifest rendering failed", Err: pdfErr})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// respondUpstreamFailure degrades to an empty trip list instead of a bare
// error: the dashboard shows the notification and renders the emptied view.
func respondUpstreamFailure(c *gin.Context, err error, snap tripview.Snapshot) {
	if !domain.IsUpstream(err) {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{
		"error":      "failed to load trips",
		"code":       "upstream_error",
		"message":    "failed to load trips",
		"request_id": middleware.GetRequestID(c),
		"trips":      snap.Trips,
		"pagination": snap.Pagination,
		"summary":    snap.Summary,
	})
}

func parsePaging(c *gin.Context) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return 0, 0, domain.ValidationError{Field: "page", Msg: "must be a positive integer"}
		}
		page = n
	}
	if raw := strings.TrimSpace(c.Query("page_size")); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > maxPageSize {
			return 0, 0, domain.ValidationError{Field: "page_size", Msg: "must be between 1 and 100"}
		}
		pageSize = n
	}
	return page, pageSize, nil
}

func parseCriteria(c *gin.Context) (tripview.Criteria, error) {
	var out tripview.Criteria

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := models.ParseStatus(raw)
		if !ok {
			return out, domain.ValidationError{Field: "status", Msg: "unknown status " + raw}
		}
		out.Status = &status
	}

	if raw := strings.TrimSpace(c.Query("driver")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return out, domain.ValidationError{Field: "driver", Msg: "must be a positive id"}
		}
		out.Driver = &id
	}

	if raw := strings.TrimSpace(c.Query("vehicle")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return out, domain.ValidationError{Field: "vehicle", Msg: "must be a positive id"}
		}
		out.Vehicle = &id
	}

	from := strings.TrimSpace(c.Query("date_from"))
	to := strings.TrimSpace(c.Query("date_to"))
	if (from == "") != (to == "") {
		return out, domain.ValidationError{Field: "date_from", Msg: "date_from and date_to must be provided together"}
	}
	if from != "" {
		fromTime, err := utils.ParseDate(from)
		if err != nil {
			return out, domain.ValidationError{Field: "date_from", Msg: "expected YYYY-MM-DD", Err: err}
		}
		toTime, err := utils.ParseDate(to)
		if err != nil {
			return out, domain.ValidationError{Field: "date_to", Msg: "expected YYYY-MM-DD", Err: err}
		}
		if toTime.Before(fromTime) {
			return out, domain.ValidationError{Field: "date_to", Msg: "must not precede date_from"}
		}
		out.DateFrom = &fromTime
		out.DateTo = &toTime
	}

	return out, nil
}
