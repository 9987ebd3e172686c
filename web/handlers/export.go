package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/utils"
	"hrmslite.com/hrmslite/web/common"
)

const gridSheet = "Attendance"

// ExportMonthly renders the monthly grid as an xlsx attachment: one row
// per employee, one column per day, P/A cells, blank where unmarked.
func (ep *AttendanceEndpoint) ExportMonthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid 'year'"))
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid 'month'"))
		return
	}
	month := time.Month(monthNum)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var employees []core.Employee
	var records []core.AttendanceRecord
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		if employees, err = core.ListEmployees(db); err != nil {
			return err
		}
		records, err = core.ListAttendanceInRange(db, start, end)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	f, err := BuildMonthlyGrid(employees, records, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", year, monthNum)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// BuildMonthlyGrid lays out the roster against the days of one month.
func BuildMonthlyGrid(employees []core.Employee, records []core.AttendanceRecord, year int, month time.Month) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), gridSheet); err != nil {
		return nil, err
	}

	daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

	headers := []any{"Employee ID", "Name", "Department"}
	for day := 1; day <= daysInMonth; day++ {
		headers = append(headers, day)
	}
	for col, value := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(gridSheet, cell, value); err != nil {
			return nil, err
		}
	}

	byEmployee := utils.GroupBy(records, func(r core.AttendanceRecord) string {
		return r.EmployeeID
	})

	for i, emp := range employees {
		row := i + 2
		for col, value := range []any{emp.EmployeeID, emp.Name, emp.Department} {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(gridSheet, cell, value); err != nil {
				return nil, err
			}
		}

		for _, rec := range byEmployee[emp.EmployeeID] {
			mark := "A"
			if rec.Status == core.StatusPresent {
				mark = "P"
			}
			cell, err := excelize.CoordinatesToCellName(3+rec.Date.Day(), row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(gridSheet, cell, mark); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
