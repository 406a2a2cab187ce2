package dto

// StatusResponse acknowledges a successful mutation
type StatusResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

// DeleteUserResponse acknowledges a user deletion and reports the cascaded tasks
type DeleteUserResponse struct {
	StatusResponse
	DeletedTasks int64 `json:"deleted_tasks"`
}
