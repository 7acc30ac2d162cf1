package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/ports"
)

// NetworkHandler serves observed networks
type NetworkHandler struct {
	Source ports.NetworkReader
}

// NewNetworkHandler creates a new NetworkHandler
func NewNetworkHandler(source ports.NetworkReader) *NetworkHandler {
	return &NetworkHandler{
		Source: source,
	}
}

// HandleList returns all networks, optionally filtered by ?security= and ?ssid=
func (h *NetworkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	networks, err := h.Source.ListNetworks(r.Context())
	if err != nil {
		log.Printf("List networks failed: %v", err)
		http.Error(w, "Failed to list networks", http.StatusInternalServerError)
		return
	}

	security := r.URL.Query().Get("security")
	ssid := r.URL.Query().Get("ssid")
	filtered := make([]domain.NetworkObservation, 0, len(networks))
	for _, n := range networks {
		if security != "" && !strings.EqualFold(n.Security, security) {
			continue
		}
		if ssid != "" && !strings.Contains(n.SSID, ssid) {
			continue
		}
		filtered = append(filtered, n)
	}

	writeJSON(w, http.StatusOK, filtered)
}

// HandleGet returns a single network by BSSID
func (h *NetworkHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bssid := mux.Vars(r)["bssid"]
	if !domain.IsValidMAC(bssid) {
		http.Error(w, "Invalid BSSID", http.StatusBadRequest)
		return
	}
	bssid = domain.NormalizeMAC(bssid)

	n, err := h.Source.GetNetwork(r.Context(), bssid)
	if errors.Is(err, ports.ErrNetworkNotFound) {
		http.Error(w, "Network not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Get network %s failed: %v", bssid, err)
		http.Error(w, "Failed to get network", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// HandleHealth reports liveness
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
