package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status  string            `json:"status" example:"healthy"`
	Service string            `json:"service" example:"studioslot"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type CountResponse struct {
	Message string `json:"message" example:"Successfully blocked 4 time slots"`
	Count   int    `json:"count" example:"4"`
}
