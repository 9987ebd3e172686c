package v1

import (
	"fmt"
	"time"
)

// AttendanceIndex is the presentation-side lookup keyed by
// (employeeId, day). A single range call fills it, so daily and monthly
// views need one round trip instead of a fetch per employee.
type AttendanceIndex map[string]string

func recordKey(employeeID, date string) string {
	return employeeID + "|" + date
}

func BuildAttendanceIndex(records []AttendanceRecord) AttendanceIndex {
	idx := make(AttendanceIndex, len(records))
	for _, rec := range records {
		idx[recordKey(rec.EmployeeID, rec.Date)] = rec.Status
	}
	return idx
}

// StatusFor returns the marked status for an employee and day, and
// whether any mark exists.
func (idx AttendanceIndex) StatusFor(employeeID, date string) (string, bool) {
	status, ok := idx[recordKey(employeeID, date)]
	return status, ok
}

// RollCallEntry pairs an employee with their status for one day; Status
// is empty when the day is unmarked.
type RollCallEntry struct {
	Employee Employee
	Status   string
}

// RollCall assembles the daily roll-call view for one day (yyyy-MM-dd).
func (c *HRMSClient) RollCall(date string) ([]RollCallEntry, error) {
	employees, err := c.Employees.List()
	if err != nil {
		return nil, err
	}

	records, err := c.Attendance.Range(date, date)
	if err != nil {
		return nil, err
	}
	idx := BuildAttendanceIndex(records)

	entries := make([]RollCallEntry, 0, len(employees))
	for _, emp := range employees {
		status, _ := idx.StatusFor(emp.EmployeeID, date)
		entries = append(entries, RollCallEntry{Employee: emp, Status: status})
	}
	return entries, nil
}

// MonthlyGrid fetches the roster and the month's records in two calls
// and returns the lookup the grid view renders from.
func (c *HRMSClient) MonthlyGrid(year int, month time.Month) ([]Employee, AttendanceIndex, error) {
	employees, err := c.Employees.List()
	if err != nil {
		return nil, nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	records, err := c.Attendance.Range(
		first.Format("2006-01-02"),
		last.Format("2006-01-02"),
	)
	if err != nil {
		return nil, nil, err
	}

	return employees, BuildAttendanceIndex(records), nil
}

// DayKey formats a calendar day the way the index expects it.
func DayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
