package v1

import (
	"fmt"
	"net/url"
	"time"
)

// Departments is the fixed list the reference UI offers. The store
// accepts any non-empty string, so this is a client-side convention
// only.
var Departments = []string{"Engineering", "HR", "Sales", "Marketing", "Finance"}

type Employee struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

type EmployeeCreate struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type EmployeeEndpoint struct {
	transport *Transport
}

// List returns the full roster, newest first.
func (e *EmployeeEndpoint) List() ([]Employee, error) {
	var employees []Employee
	if _, err := e.transport.Get("/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create registers a new employee and returns the stored record with
// its internal id and creation timestamp.
func (e *EmployeeEndpoint) Create(in EmployeeCreate) (*Employee, error) {
	var created Employee
	if _, err := e.transport.Post("/employees", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes an employee by internal id. Attendance records are
// left behind by design of the server.
func (e *EmployeeEndpoint) Delete(id string) error {
	path := fmt.Sprintf("/employees/%s", url.PathEscape(id))
	_, err := e.transport.Delete(path, nil)
	return err
}
