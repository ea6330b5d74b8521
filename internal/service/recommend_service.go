package service

import (
	"context"
	"fmt"
	"log"

	"github.com/tuantrung97/spe-rec-system/internal/cache"
	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/models"
	"github.com/tuantrung97/spe-rec-system/internal/repository"
	"github.com/tuantrung97/spe-rec-system/internal/store"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
)

// RecommendService capa de consulta sobre el dataset indexado. Las
// operaciones son puras: mismo dataset + mismos argumentos = misma
// respuesta. El historial en Mongo y el cache Redis son laterales y
// nunca rompen una respuesta.
type RecommendService struct {
	store *store.Store
	hist  *repository.HistoryRepository
}

func NewRecommendService(st *store.Store, hist *repository.HistoryRepository) *RecommendService {
	return &RecommendService{store: st, hist: hist}
}

// ====== Recomendaciones por usuario ======

type RecRequest struct {
	UserID  int
	K       int
	Refresh bool
}

// clampK defaults y límites para K.
func clampK(k int) int {
	if k <= 0 {
		return DefaultK
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

// la generación del store va en la key: una recarga invalida el cache
// sin tener que borrar claves
func recCacheKey(req RecRequest, gen int64) string {
	return fmt.Sprintf("rec:user:%d:k:%d:g:%d", req.UserID, req.K, gen)
}

// Recommend top-K del usuario. Usuario sin recomendaciones => lista
// vacía, no error (es un resultado esperado para usuarios no vistos).
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	req.K = clampK(req.K)

	ds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	gen := s.store.Generation()

	// 1) Cache Redis (solo si refresh = false)
	if !req.Refresh {
		var cached []models.RecItem
		if ok, err := cache.GetJSON(ctx, recCacheKey(req, gen), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Lookup en el índice pre-ordenado
	recs := ds.RecommendationsFor(req.UserID, req.K)
	items := make([]models.RecItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, models.RecItem{
			ProductName:     rec.ProductName,
			Link:            rec.Link,
			Image:           rec.Image,
			Price:           FormatPrice(rec.Price),
			PredictedRating: rec.PredictedRating,
		})
	}

	// 3) Historial en Mongo (no rompemos la respuesta si falla)
	if s.hist != nil && s.hist.Enabled() && len(items) > 0 {
		name := "Unknown"
		if u, ok := ds.User(req.UserID); ok {
			name = u.Name
		}
		h := &models.RecHistory{
			UserID:   req.UserID,
			UserName: name,
			K:        req.K,
			Items:    items,
		}
		if err := s.hist.Insert(ctx, h); err != nil {
			log.Printf("[recommend] error guardando historial en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, recCacheKey(req, gen), items, 60*60); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return items, nil
}

// UserName nombre visible del usuario, "Unknown" si no está en la tabla
// de ratings (igual que la app original).
func (s *RecommendService) UserName(ctx context.Context, userID int) (string, error) {
	ds, err := s.store.Get(ctx)
	if err != nil {
		return "", err
	}
	if u, ok := ds.User(userID); ok {
		return u.Name, nil
	}
	return "Unknown", nil
}

// ====== Productos similares ======

func simCacheKey(productID, k int, gen int64) string {
	return fmt.Sprintf("sim:product:%d:k:%d:g:%d", productID, k, gen)
}

// SimilarProducts vecinos precalculados del producto en orden de rank.
// Producto no reconocido => dataset.ErrNotFound (distinto de "existe
// pero sin vecinos", que sería Items vacío).
func (s *RecommendService) SimilarProducts(ctx context.Context, productID, k int) (*models.SimilarProducts, error) {
	k = clampK(k)

	ds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	gen := s.store.Generation()

	var cached models.SimilarProducts
	if ok, err := cache.GetJSON(ctx, simCacheKey(productID, k, gen), &cached); err == nil && ok {
		return &cached, nil
	}

	original, sims, err := ds.SimilarTo(productID, k)
	if err != nil {
		return nil, err
	}

	out := &models.SimilarProducts{
		Original: original,
		Items:    make([]models.SimilarItem, 0, len(sims)),
	}
	for _, sim := range sims {
		out.Items = append(out.Items, models.SimilarItem{
			ProductID: sim.ProductID,
			Name:      sim.Name,
			Image:     sim.Image,
			Price:     FormatPrice(sim.Price),
			Link:      sim.Link,
			Score:     sim.Score,
			Rank:      sim.Rank,
		})
	}

	if err := cache.SetJSON(ctx, simCacheKey(productID, k, gen), out, 60*60); err != nil {
		log.Printf("[recommend] error cacheando similares en Redis: %v", err)
	}

	return out, nil
}

// LookupProduct resuelve un nombre de producto a su id. Con nombres
// duplicados gana la primera aparición en el archivo (tie-break
// explícito, los nombres no son únicos en la data de origen).
func (s *RecommendService) LookupProduct(ctx context.Context, name string) (int, error) {
	ds, err := s.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := ds.ProductIDByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: producto %q", dataset.ErrNotFound, name)
	}
	return id, nil
}

// ====== Soporte para el shell de presentación ======

// SampleUsers muestra determinista de usuarios para la tabla de ejemplo.
func (s *RecommendService) SampleUsers(ctx context.Context, n int) ([]models.UserRecord, error) {
	if n <= 0 {
		n = 10
	}
	ds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ds.SampleUsers(n), nil
}

// Bounds rango min/max de user_id observado (el shell acota su input
// con esto; el servicio no valida rango).
func (s *RecommendService) Bounds(ctx context.Context) (models.UserIDBounds, error) {
	ds, err := s.store.Get(ctx)
	if err != nil {
		return models.UserIDBounds{}, err
	}
	return ds.Bounds(), nil
}

// Stats conteos de la carga vigente.
func (s *RecommendService) Stats(ctx context.Context) (models.LoadStats, error) {
	ds, err := s.store.Get(ctx)
	if err != nil {
		return models.LoadStats{}, err
	}
	return ds.Stats(), nil
}

// Reload recarga las tablas (pasa por el gate single-flight del store)
// y devuelve los conteos de la carga nueva.
func (s *RecommendService) Reload(ctx context.Context) (models.LoadStats, error) {
	ds, err := s.store.Reload(ctx)
	if err != nil {
		return models.LoadStats{}, err
	}
	return ds.Stats(), nil
}

// History historial servido a un usuario (vacío si Mongo está apagado).
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.RecHistory, error) {
	if s.hist == nil {
		return []models.RecHistory{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.hist.FindByUser(ctx, userID, limit)
}
