package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler endpoints de mantenimiento del dataset.
type AdminHandler struct {
	svc *service.RecommendService
}

func NewAdminHandler(svc *service.RecommendService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Summary Recargar las tablas
// @Description Invalida el dataset cargado y vuelve a leer las tres tablas. Recargas concurrentes comparten una sola carga.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.LoadStats
// @Failure 503 {string} string "tablas no disponibles"
// @Router /admin/reload [post]
func (h *AdminHandler) PostReload(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Reload(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// @Summary Conteos de la carga vigente
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.LoadStats
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// @Summary Historial de recomendaciones servidas
// @Description Lee de Mongo las últimas respuestas servidas a un usuario. Vacío si el historial está deshabilitado.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param userId query int true "userId"
// @Param limit query int false "límite (default 20)"
// @Success 200 {array} models.RecHistory
// @Router /admin/history [get]
func (h *AdminHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(r.URL.Query().Get("userId"))
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// httpError mapea la taxonomía de errores del dataset a códigos HTTP:
// NotFound => 404 (el frontend muestra warning), DataUnavailable y
// Schema => 503 (estado de error), el resto => 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, dataset.ErrDataUnavailable), errors.Is(err, dataset.ErrSchema):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Helper para montar rutas en main.go
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/reload", h.PostReload)
		r.Get("/stats", h.GetStats)
		r.Get("/history", h.GetHistory)
	})
}
