package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse пишет data в формате JSON с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
