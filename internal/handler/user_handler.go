package handler

import (
	"net/http"
	"strconv"

	"github.com/tuantrung97/spe-rec-system/internal/service"
)

type UserHandler struct {
	svc *service.RecommendService
}

func NewUserHandler(s *service.RecommendService) *UserHandler {
	return &UserHandler{svc: s}
}

// @Summary Muestra de usuarios
// @Description Muestra determinista de usuarios para la tabla "Sample Customers" del frontend.
// @Tags users
// @Produce json
// @Param n query int false "cantidad (default 10)"
// @Success 200 {array} models.UserRecord
// @Router /users/sample [get]
func (h *UserHandler) Sample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	users, err := h.svc.SampleUsers(r.Context(), n)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// @Summary Rango de user_id observado
// @Description Min/max de user_id en el dataset, para que el frontend acote su input numérico.
// @Tags users
// @Produce json
// @Success 200 {object} models.UserIDBounds
// @Router /users/bounds [get]
func (h *UserHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	b, err := h.svc.Bounds(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
