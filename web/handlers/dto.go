package handlers

import (
	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/web/common"
)

type EmployeeCreateDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
}

type AttendanceMarkDTO struct {
	EmployeeID string           `json:"employeeId" binding:"required"`
	Date       *common.DateOnly `json:"date" binding:"required"`
	Status     string           `json:"status" binding:"required,oneof=Present Absent"`
}

type AttendanceRecordDTO struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Date       common.DateOnly `json:"date"`
	Status     string          `json:"status"`
}

func toAttendanceDTO(rec core.AttendanceRecord) AttendanceRecordDTO {
	return AttendanceRecordDTO{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       common.DateOnly{Time: rec.Date},
		Status:     rec.Status,
	}
}
