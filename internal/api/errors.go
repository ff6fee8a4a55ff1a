package api

import (
	"encoding/json"
	"net/http"

	"github.com/nauticalab/coder-workspace/internal/logger"
)

// XSSIPrefix is the guard line Gerrit puts in front of every REST JSON body.
const XSSIPrefix = ")]}'\n"

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("error encoding JSON response", "error", err)
		}
	}
}

// respondGerritJSON sends a JSON response prefixed with the XSSI guard.
func respondGerritJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(XSSIPrefix)); err != nil {
		logger.Error("error writing response", "error", err)
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("error encoding JSON response", "error", err)
	}
}

// respondError sends an error response in JSON format
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondNotFound sends a 404 Not Found error
func respondNotFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, message)
}

// respondMethodNotAllowed sends a 405 Method Not Allowed error
func respondMethodNotAllowed(w http.ResponseWriter, message string) {
	respondError(w, http.StatusMethodNotAllowed, message)
}

// respondSuccess sends a 200 OK with payload
func respondSuccess(w http.ResponseWriter, payload any) {
	respondJSON(w, http.StatusOK, payload)
}
