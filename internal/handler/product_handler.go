package handler

import (
	"net/http"
	"strconv"

	"github.com/tuantrung97/spe-rec-system/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	svc *service.RecommendService
}

func NewProductHandler(s *service.RecommendService) *ProductHandler {
	return &ProductHandler{svc: s}
}

// @Summary Productos similares
// @Description Vecinos precalculados por el modelo de contenido (Gensim), en orden de rank ascendente. Un productId no reconocido devuelve 404 para que el frontend muestre warning en vez de una lista vacía.
// @Tags products
// @Produce json
// @Param id path int true "productId"
// @Param k query int false "cantidad de similares (máx 50, default 5)"
// @Success 200 {object} models.SimilarProducts
// @Failure 404 {string} string "producto no reconocido"
// @Router /products/{id}/similar [get]
func (h *ProductHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	productID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	out, err := h.svc.SimilarProducts(r.Context(), productID, k)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// @Summary Buscar producto por nombre
// @Description Resuelve un nombre exacto de producto a su productId. Con nombres duplicados gana la primera aparición en el archivo.
// @Tags products
// @Produce json
// @Param name query string true "nombre exacto del producto"
// @Success 200 {object} map[string]int
// @Failure 404 {string} string "producto no encontrado"
// @Router /products/lookup [get]
func (h *ProductHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "query param name requerido", http.StatusBadRequest)
		return
	}

	id, err := h.svc.LookupProduct(r.Context(), name)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"productId": id})
}
