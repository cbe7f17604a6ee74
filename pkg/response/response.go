package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HireResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

type KeyResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	KeyValue  string `json:"key_value"`
}
