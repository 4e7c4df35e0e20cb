package utils

import (
	"encoding/json"
	"net/http"

	"github.com/fourcoretech/leaderboard-service/internal/logger"
)

type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Metadata interface{} `json:"metadata,omitempty"`
	Error    string      `json:"error,omitempty"`
	Message  string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// SuccessMeta writes a success envelope with a metadata object
// (counts, limits) alongside the data payload.
func SuccessMeta(w http.ResponseWriter, data interface{}, meta interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data, Metadata: meta})
}

func Error(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		logger.Error("%s: %v", msg, err)
	} else {
		logger.Error("%s", msg)
	}
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
