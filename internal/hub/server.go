package hub

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TiagoK-777/hass-abaco-finance/internal/action"
)

// Router builds the hub HTTP API.
func (h *Hub) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/sensors", h.handleSensors).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/sensors/{id}", h.handleSensor).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/devices", h.handleDevices).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/services/create_transaction", h.handleCreateTransaction).Methods(http.MethodPost)
	return r
}

func (h *Hub) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Hub) handleSensors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.States())
}

func (h *Hub) handleSensor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, ok := h.State(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown sensor: " + id})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Hub) handleDevices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Devices())
}

func (h *Hub) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req action.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := action.CreateTransaction(r.Context(), h.client, req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// The API-level outcome is always reported in the body; callers check
	// the success flag, not the HTTP status.
	if !result.Success {
		h.log.Warnf("create transaction failed: status=%d error=%s", result.Status, result.Error)
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
