package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hrmslite.com/hrmslite/core"
)

// newStoreRouter backs the handlers with a real store so the unique
// indexes, upsert and not-found paths are exercised end to end.
func newStoreRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "hrms.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&core.Employee{}, &core.AttendanceRecord{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	dm := &core.DatabaseManager{DB: db}
	RegisterEmployeeRoutes(api, dm)
	RegisterAttendanceRoutes(api, dm)
	return r
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func createEmployee(t *testing.T, r *gin.Engine, employeeID, name, email string) core.Employee {
	t.Helper()
	body := fmt.Sprintf(
		`{"employeeId":%q,"name":%q,"email":%q,"department":"Engineering"}`,
		employeeID, name, email,
	)
	w := perform(r, http.MethodPost, "/api/employees", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeJSON[core.Employee](t, w.Body.Bytes())
}

func TestCreateEmployeeDuplicateLeavesStoreUnchanged(t *testing.T) {
	r := newStoreRouter(t)

	created := createEmployee(t, r, "EMP002", "Grace Hopper", "grace@example.com")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	tests := []struct {
		name string
		body string
	}{
		{
			name: "Same employeeId",
			body: `{"employeeId":"EMP002","name":"Someone Else","email":"else@example.com","department":"Sales"}`,
		},
		{
			name: "Same email",
			body: `{"employeeId":"EMP999","name":"Someone Else","email":"grace@example.com","department":"Sales"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodPost, "/api/employees", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Employee ID or Email already exists")
		})
	}

	w := perform(r, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	employees := decodeJSON[[]core.Employee](t, w.Body.Bytes())
	require.Len(t, employees, 1)
	assert.Equal(t, "EMP002", employees[0].EmployeeID)
}

func TestDeleteEmployee(t *testing.T) {
	r := newStoreRouter(t)

	keep := createEmployee(t, r, "EMP001", "Ada Lovelace", "ada@example.com")
	gone := createEmployee(t, r, "EMP002", "Grace Hopper", "grace@example.com")

	w := perform(r, http.MethodDelete, "/api/employees/"+gone.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deleted")

	// Second delete of the same id is a not-found, not a success
	w = perform(r, http.MethodDelete, "/api/employees/"+gone.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")

	w = perform(r, http.MethodDelete, "/api/employees/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	employees := decodeJSON[[]core.Employee](t, w.Body.Bytes())
	require.Len(t, employees, 1)
	assert.Equal(t, keep.ID, employees[0].ID)
}

func TestDeleteEmployeeKeepsAttendance(t *testing.T) {
	r := newStoreRouter(t)

	emp := createEmployee(t, r, "EMP001", "Ada Lovelace", "ada@example.com")

	w := perform(r, http.MethodPost, "/api/attendance",
		`{"employeeId":"EMP001","date":"2024-03-05","status":"Present"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodDelete, "/api/employees/"+emp.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// No cascade: the orphaned record stays readable
	w = perform(r, http.MethodGet, "/api/attendance/EMP001", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeJSON[[]AttendanceRecordDTO](t, w.Body.Bytes())
	assert.Len(t, records, 1)
}

func TestMarkAttendanceUnknownEmployeeWritesNothing(t *testing.T) {
	r := newStoreRouter(t)

	w := perform(r, http.MethodPost, "/api/attendance",
		`{"employeeId":"GHOST","date":"2024-03-05","status":"Present"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")

	w = perform(r, http.MethodGet, "/api/attendance/GHOST", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = perform(r, http.MethodGet, "/api/attendance?start=2024-03-01&end=2024-03-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMarkAttendanceUpsert(t *testing.T) {
	r := newStoreRouter(t)
	createEmployee(t, r, "EMP001", "Ada Lovelace", "ada@example.com")

	w := perform(r, http.MethodPost, "/api/attendance",
		`{"employeeId":"EMP001","date":"2024-03-05","status":"Present"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decodeJSON[AttendanceRecordDTO](t, w.Body.Bytes())
	assert.Equal(t, core.StatusPresent, first.Status)

	// Same calendar day at a different time of day overwrites in place
	w = perform(r, http.MethodPost, "/api/attendance",
		`{"employeeId":"EMP001","date":"2024-03-05T22:00:00","status":"Absent"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decodeJSON[AttendanceRecordDTO](t, w.Body.Bytes())
	assert.Equal(t, core.StatusAbsent, second.Status)
	assert.Equal(t, first.ID, second.ID)

	w = perform(r, http.MethodGet, "/api/attendance/EMP001", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeJSON[[]AttendanceRecordDTO](t, w.Body.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, core.StatusAbsent, records[0].Status)
}

func TestAttendanceRangeReturnsOnlyDatesInside(t *testing.T) {
	r := newStoreRouter(t)
	createEmployee(t, r, "EMP001", "Ada Lovelace", "ada@example.com")
	createEmployee(t, r, "EMP002", "Grace Hopper", "grace@example.com")

	for _, mark := range []string{
		`{"employeeId":"EMP001","date":"2024-03-05","status":"Present"}`,
		`{"employeeId":"EMP002","date":"2024-03-06","status":"Absent"}`,
		`{"employeeId":"EMP001","date":"2024-04-01","status":"Present"}`,
	} {
		w := perform(r, http.MethodPost, "/api/attendance", mark)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := perform(r, http.MethodGet, "/api/attendance?start=2024-03-01&end=2024-03-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeJSON[[]AttendanceRecordDTO](t, w.Body.Bytes())
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.NotEqual(t, "2024-04-01", rec.Date.Format("2006-01-02"))
	}
}

func TestListEmployeesNewestFirst(t *testing.T) {
	r := newStoreRouter(t)

	createEmployee(t, r, "EMP001", "Ada Lovelace", "ada@example.com")
	time.Sleep(5 * time.Millisecond)
	createEmployee(t, r, "EMP002", "Grace Hopper", "grace@example.com")

	w := perform(r, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	employees := decodeJSON[[]core.Employee](t, w.Body.Bytes())
	require.Len(t, employees, 2)
	assert.Equal(t, "EMP002", employees[0].EmployeeID)
	assert.Equal(t, "EMP001", employees[1].EmployeeID)
}
