package handlers

import (
	"log"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, MessageResponse{Message: "Welcome to the blog API"}, http.StatusOK)
}

// HealthHandler reports 503 when the database cannot be queried.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesDB(r.Context())
	if err != nil {
		log.Printf("Проверка здоровья не пройдена: %v", err)
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", Tables: count}, http.StatusOK)
}
