package v1

import (
	"fmt"
	"net/http"
	"net/url"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// AttendanceRecord keeps the date as the wire string (yyyy-MM-dd); the
// presentation layer only ever compares and displays it.
type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type AttendanceMark struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

// ListByEmployee returns one employee's records, most recent date
// first. An unknown employee yields an empty list, not an error.
func (a *AttendanceEndpoint) ListByEmployee(employeeID string) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	path := fmt.Sprintf("/attendance/%s", url.PathEscape(employeeID))
	if _, err := a.transport.Get(path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Mark records Present/Absent for one employee and day. The second
// return value reports whether a new record was created (as opposed to
// an existing one being overwritten).
func (a *AttendanceEndpoint) Mark(in AttendanceMark) (*AttendanceRecord, bool, error) {
	var stored AttendanceRecord
	status, err := a.transport.Post("/attendance", in, &stored)
	if err != nil {
		return nil, false, err
	}
	return &stored, status == http.StatusCreated, nil
}

// Range returns every employee's records between two days inclusive.
func (a *AttendanceEndpoint) Range(start, end string) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	query := map[string]string{"start": start, "end": end}
	if _, err := a.transport.Get("/attendance", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}
