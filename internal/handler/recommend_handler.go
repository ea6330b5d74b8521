package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/tuantrung97/spe-rec-system/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones para un usuario
// @Description Top-K precalculado por el modelo ALS, orden descendente por rating predicho. Usuario sin recomendaciones devuelve lista vacía.
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50, default 5)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		httpError(w, err)
		return
	}

	name, err := h.svc.UserName(r.Context(), userID)
	if err != nil {
		httpError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"userId": userID,
		"user":   name,
		"items":  items,
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones por WebSocket
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, consultando índices…",
	})

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID: userID,
		K:      k,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	name, _ := h.svc.UserName(r.Context(), userID)

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"user":        name,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
