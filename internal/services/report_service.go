package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/npcoderes/GTS-sub001/internal/tripview"
	"github.com/npcoderes/GTS-sub001/internal/utils"
)

// ReportService renders the filtered trip list as a printable PDF manifest.
type ReportService struct {
	RequestID string
}

// TripManifest renders one manifest page per fetched trip page. The listing
// reflects the filtered set, the counters mirror the dashboard summary.
func (s ReportService) TripManifest(snap tripview.Snapshot, generatedAt time.Time) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "reports", "trip_manifest",
		fmt.Sprintf("trips=%d page=%d", len(snap.Trips), snap.Pagination.Page))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Trip Manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Generated    : %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Page         : %d (size %d, %d upstream total)",
		snap.Pagination.Page, snap.Pagination.PageSize, snap.Pagination.Total))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Counters     : %d listed, %d active, %d completed",
		snap.Summary.Total, snap.Summary.Active, snap.Summary.Completed))
	pdf.Ln(10)

	headers := []string{"ID", "Status", "Driver", "Vehicle", "Origin (MS)", "Destination (DBS)", "Created"}
	widths := []float64{18, 30, 50, 38, 48, 48, 36}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range snap.Trips {
		cols := []string{
			fmt.Sprintf("%d", t.ID),
			string(t.Status),
			safe(t.DriverDetails.FullName, "-"),
			safe(t.VehicleDetails.RegistrationNo, "-"),
			safe(t.MSDetails.Name, "-"),
			safe(t.DBSDetails.Name, "-"),
			utils.FormatDate(t.CreatedAt),
		}
		for i, c := range cols {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(snap.Trips) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "No trips match the active filters on this page.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TRIP_MANIFEST_p%d_%s.pdf",
		snap.Pagination.Page, generatedAt.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
