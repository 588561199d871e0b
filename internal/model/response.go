package model

// ErrorResponse тело ответа с ошибкой клиента.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse тело ответа /health.
type HealthResponse struct {
	Status string `json:"status"`
}
