package dto

// LimitRequest parámetros de truncamiento para los reportes "top N".
type LimitRequest struct {
	Limit int `query:"limit"`
	Days  int `query:"days"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
