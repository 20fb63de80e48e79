package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/servicehall/hallkeeper/internal/hall/service"
)

// writeResult renders a shaped operation outcome. A 204 carries no body;
// everything else is the status-coded {"code", "message"} JSON document.
func writeResult(w http.ResponseWriter, res service.Result) {
	if res.Code == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, res.Code, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
