package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/utils"
	"hrmslite.com/hrmslite/web/common"
)

type AttendanceEndpoint struct {
	dm *core.DatabaseManager
}

func RegisterAttendanceRoutes(r *gin.RouterGroup, dm *core.DatabaseManager) {
	ep := &AttendanceEndpoint{dm: dm}
	r.GET("/attendance", ep.Range)
	r.GET("/attendance/:employeeId", ep.ListByEmployee)
	r.POST("/attendance", ep.Mark)
	r.GET("/reports/attendance", ep.ExportMonthly)
}

// Mark upserts the Present/Absent record for one employee and one day.
// 201 when a new record was inserted, 200 when an existing one was
// overwritten (last write wins).
func (ep *AttendanceEndpoint) Mark(c *gin.Context) {
	var dto AttendanceMarkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var stored *core.AttendanceRecord
	var created, employeeMissing bool

	err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		emp, err := core.FindEmployeeByEmployeeID(db, dto.EmployeeID)
		if err != nil {
			return err
		}
		if emp == nil {
			employeeMissing = true
			return nil
		}
		stored, created, err = core.MarkAttendance(db, dto.EmployeeID, dto.Date.Time, dto.Status)
		return err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	if employeeMissing {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toAttendanceDTO(*stored))
}

func (ep *AttendanceEndpoint) ListByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var records []core.AttendanceRecord
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		records, err = core.ListAttendanceByEmployee(db, employeeID)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.Map(records, toAttendanceDTO))
}

// Range returns every employee's records with a date inside
// [start, end] inclusive, so grid views need a single round trip.
func (ep *AttendanceEndpoint) Range(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")
	if startParam == "" || endParam == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Query parameters 'start' and 'end' are required"))
		return
	}

	start, err := utils.ParseDay(startParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid 'start' date"))
		return
	}
	end, err := utils.ParseDay(endParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid 'end' date"))
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("'end' must not be before 'start'"))
		return
	}

	var records []core.AttendanceRecord
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		records, err = core.ListAttendanceInRange(db, start, end)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.Map(records, toAttendanceDTO))
}
