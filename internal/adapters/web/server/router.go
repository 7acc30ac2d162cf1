package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/web/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", handlers.HandleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/networks", s.NetworkHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/networks/{bssid}", s.NetworkHandler.HandleGet).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
