package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz reports process liveness.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
