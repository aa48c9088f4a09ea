package httpjson

import (
	"encoding/json"
	"net/http"
)

// Kinds de error expuestos en el body estructurado.
const (
	KindValidation = "validation_error"
	KindNotFound   = "not_found"
	KindInternal   = "internal_error"
)

// ErrorBody es el contrato de error de toda la API:
// {"error": <kind>, "message": <texto>, "statusCode": <código>}.
type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// MessageBody es la respuesta de los DELETE ("message": ...).
type MessageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, kind, msg string) {
	WriteJSON(w, status, ErrorBody{
		Error:      kind,
		Message:    msg,
		StatusCode: status,
	})
}

func BadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, KindValidation, msg)
}

func NotFound(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusNotFound, KindNotFound, msg)
}

func Internal(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, KindInternal, "internal error")
}
