package core

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type AttendanceRecord struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:64;not null;uniqueIndex:idx_employee_date" json:"employeeId"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`
	Status     string    `gorm:"size:16;not null" json:"status"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// MarkAttendance upserts the record for (employeeID, day) in a single
// statement; day must already be normalized to midnight. The composite
// unique index resolves concurrent marks, last write wins. Returns the
// stored record and whether a new row was inserted: an insert keeps the
// id generated for rec, an overwrite keeps the existing row's id.
func MarkAttendance(db *gorm.DB, employeeID string, day time.Time, status string) (*AttendanceRecord, bool, error) {
	rec := AttendanceRecord{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&rec)
	if result.Error != nil {
		return nil, false, result.Error
	}

	var stored AttendanceRecord
	if err := db.Where("employee_id = ? AND date = ?", employeeID, day).Take(&stored).Error; err != nil {
		return nil, false, err
	}
	return &stored, stored.ID == rec.ID, nil
}

// ListAttendanceByEmployee returns all records for one employee, most
// recent date first. An unknown employeeID simply yields an empty list.
func ListAttendanceByEmployee(db *gorm.DB, employeeID string) ([]AttendanceRecord, error) {
	records := make([]AttendanceRecord, 0)
	err := db.Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListAttendanceInRange returns every employee's records with a date in
// [start, end] inclusive, most recent date first.
func ListAttendanceInRange(db *gorm.DB, start, end time.Time) ([]AttendanceRecord, error) {
	records := make([]AttendanceRecord, 0)
	err := db.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, employee_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
