package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/web/common"
)

type EmployeeEndpoint struct {
	dm *core.DatabaseManager
}

func RegisterEmployeeRoutes(r *gin.RouterGroup, dm *core.DatabaseManager) {
	ep := &EmployeeEndpoint{dm: dm}
	r.GET("/employees", ep.List)
	r.POST("/employees", ep.Create)
	r.DELETE("/employees/:id", ep.Delete)
}

func (ep *EmployeeEndpoint) List(c *gin.Context) {
	var employees []core.Employee

	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		employees, err = core.ListEmployees(db)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ep *EmployeeEndpoint) Create(c *gin.Context) {
	var dto EmployeeCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp := core.Employee{
		EmployeeID: dto.EmployeeID,
		Name:       dto.Name,
		Email:      dto.Email,
		Department: dto.Department,
	}

	var taken bool
	err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		taken, err = core.EmployeeKeyExists(db, dto.EmployeeID, dto.Email)
		if err != nil || taken {
			return err
		}
		return core.CreateEmployee(db, &emp)
	})

	// The unique indexes are the authority; the pre-check only gives a
	// friendlier answer for the common case.
	if taken || errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee ID or Email already exists"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, emp)
}

func (ep *EmployeeEndpoint) Delete(c *gin.Context) {
	id := c.Param("id")

	err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return core.DeleteEmployeeByID(db, id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
