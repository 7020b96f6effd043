package respond

import (
	"encoding/json"
	"net/http"
)

// Message is the body shape for status-only responses.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON body with the given status code. Encoding problems
// after the header is written cannot be reported to the client and are
// dropped.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Message: msg})
}
