package models

// FetchPublishResponse is returned by the fetch-and-publish trigger
// swagger:model FetchPublishResponse
type FetchPublishResponse struct {
	// example: exchange rates published successfully
	Message string `json:"message"`
	// Number of records published
	Count int `json:"count"`
}

// FetchPublishErrorResponse is returned when a fetch-and-publish cycle fails
// swagger:model FetchPublishErrorResponse
type FetchPublishErrorResponse struct {
	// example: execution failed
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
