package server

import (
	"encoding/json"
	"net/http"

	"portfoliodash/internal/csvdata"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	payload, err := s.payload(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("dashboard payload assembly failed")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleExportTransactions serializes the transaction snapshot back to
// the 7-column execution format.
func (s *Server) handleExportTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="executions.csv"`)
	if err := csvdata.WriteTransactions(w, s.transactions); err != nil {
		s.log.Error().Err(err).Msg("exporting transactions")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
