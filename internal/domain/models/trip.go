package models

import (
	"strings"
	"time"
)

// TripStatus mirrors the fleet API status enumeration.
type TripStatus string

const (
	StatusPending   TripStatus = "PENDING"
	StatusAtMS      TripStatus = "AT_MS"
	StatusInTransit TripStatus = "IN_TRANSIT"
	StatusAtDBS     TripStatus = "AT_DBS"
	StatusCompleted TripStatus = "COMPLETED"
	StatusCancelled TripStatus = "CANCELLED"
)

// AllStatuses lists the enumeration in lifecycle order.
var AllStatuses = []TripStatus{
	StatusPending,
	StatusAtMS,
	StatusInTransit,
	StatusAtDBS,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus validates a raw status value (case-insensitive).
func ParseStatus(raw string) (TripStatus, bool) {
	s := TripStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllStatuses {
		if s == known {
			return known, true
		}
	}
	return "", false
}

// Terminal reports whether the trip can no longer progress.
func (s TripStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Color returns the dashboard badge color for a status.
func (s TripStatus) Color() string {
	switch s {
	case StatusCompleted:
		return "green"
	case StatusCancelled:
		return "red"
	case StatusPending:
		return "orange"
	case StatusAtMS:
		return "blue"
	case StatusInTransit:
		return "cyan"
	case StatusAtDBS:
		return "purple"
	default:
		return "default"
	}
}

// DriverDetails is the embedded driver display payload on a trip.
type DriverDetails struct {
	FullName string `json:"full_name"`
}

// VehicleDetails is the embedded vehicle display payload on a trip.
type VehicleDetails struct {
	RegistrationNo string `json:"registration_no"`
}

// FacilityDetails labels an MS (origin) or DBS (destination) facility.
type FacilityDetails struct {
	Name string `json:"name"`
}

// Trip is a single transport movement record as served by the fleet API.
// Field names and tags follow the upstream wire shape.
type Trip struct {
	ID             int64           `json:"id"`
	Status         TripStatus      `json:"status"`
	Driver         int64           `json:"driver"`
	DriverDetails  DriverDetails   `json:"driver_details"`
	Vehicle        int64           `json:"vehicle"`
	VehicleDetails VehicleDetails  `json:"vehicle_details"`
	MS             int64           `json:"ms"`
	MSDetails      FacilityDetails `json:"ms_details"`
	DBS            int64           `json:"dbs"`
	DBSDetails     FacilityDetails `json:"dbs_details"`
	StartedAt      *time.Time      `json:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at"`
	CreatedAt      time.Time       `json:"created_at"`
}
