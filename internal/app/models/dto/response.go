package dto

// APIResponse is the standard response envelope: {success, data} on success,
// {success, message} on failure.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope around data
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewErrorResponse creates a failure envelope with a message
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// PaginationInfo describes the page window of a list response. Page is
// 1-based; Total counts all matches ignoring pagination.
type PaginationInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListResponse is the envelope for paginated collections
type ListResponse struct {
	Success    bool           `json:"success"`
	Data       interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewListResponse creates a paginated success envelope
func NewListResponse(data interface{}, pagination PaginationInfo) ListResponse {
	return ListResponse{Success: true, Data: data, Pagination: pagination}
}
