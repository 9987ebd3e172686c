package v1

type HRMSClient struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
}

// NewHRMSClient initializes the API client against one base URL
// (e.g. "http://localhost:8090/api").
func NewHRMSClient(baseURL string) *HRMSClient {
	t := NewTransport(baseURL)
	return &HRMSClient{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
