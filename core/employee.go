package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:64;not null;uniqueIndex" json:"employeeId"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Department string    `gorm:"size:64;not null" json:"department"`
	CreatedAt  time.Time `gorm:"<-:create" json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ListEmployees returns the full roster, most recently created first.
func ListEmployees(db *gorm.DB) ([]Employee, error) {
	employees := make([]Employee, 0)
	if err := db.Order("created_at DESC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindEmployeeByEmployeeID resolves the administrator-assigned identifier.
// Returns (nil, nil) when no such employee exists.
func FindEmployeeByEmployeeID(db *gorm.DB, employeeID string) (*Employee, error) {
	var emp Employee
	result := db.Where("employee_id = ?", employeeID).Take(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

// EmployeeKeyExists reports whether employeeID or email is already taken.
// Best effort only: the unique indexes remain the source of truth and a
// concurrent create can still fail with gorm.ErrDuplicatedKey.
func EmployeeKeyExists(db *gorm.DB, employeeID, email string) (bool, error) {
	var count int64
	err := db.Model(&Employee{}).
		Where("employee_id = ? OR email = ?", employeeID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateEmployee inserts the record; duplicate natural keys surface as
// gorm.ErrDuplicatedKey.
func CreateEmployee(db *gorm.DB, emp *Employee) error {
	return db.Create(emp).Error
}

// DeleteEmployeeByID removes the record addressed by its internal id.
// Returns gorm.ErrRecordNotFound when no row matches. Attendance records
// are left in place.
func DeleteEmployeeByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
