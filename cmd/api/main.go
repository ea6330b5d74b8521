package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/tuantrung97/spe-rec-system/docs" // swagger docs

	"github.com/tuantrung97/spe-rec-system/internal/cache"
	"github.com/tuantrung97/spe-rec-system/internal/config"
	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/db"
	"github.com/tuantrung97/spe-rec-system/internal/handler"
	"github.com/tuantrung97/spe-rec-system/internal/repository"
	"github.com/tuantrung97/spe-rec-system/internal/service"
	"github.com/tuantrung97/spe-rec-system/internal/source"
	"github.com/tuantrung97/spe-rec-system/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Shopee Recommender API
// @version 1.0
// @description API de serving para recomendaciones precalculadas (ALS + Gensim)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Redis y Mongo (ambos opcionales)
	cache.InitRedis(cfg)
	db.InitMongo(cfg)

	// fuente de tablas: filesystem local con reintentos acotados
	src := source.WithRetry(source.FileSource{}, cfg.LoadRetries, 2*time.Second)

	st := store.New(src, store.Paths{
		Ratings:         cfg.RatingsFile,
		Recommendations: cfg.UserRecsFile,
		Similarities:    cfg.SimsFile,
	}, dataset.Options{
		RatingsSep: cfg.RatingsSep,
		RecsSep:    cfg.UserRecsSep,
		SimsSep:    cfg.SimsSep,
	})

	// carga inicial: sin las tablas no hay nada que servir
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := st.Get(ctx); err != nil {
		log.Fatalf("[api] carga inicial falló: %v", err)
	}
	cancel()

	// repos y services
	histRepo := repository.NewHistoryRepository()
	recSvc := service.NewRecommendService(st, histRepo)
	authSvc := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(recSvc)
	recH := handler.NewRecommendHandler(recSvc)
	prodH := handler.NewProductHandler(recSvc)
	adminH := handler.NewAdminHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/login", authH.Login)

	r.Get("/users/sample", userH.Sample)
	r.Get("/users/bounds", userH.Bounds)
	r.Get("/users/{id}/recommendations", recH.GetRecommendations)
	r.Get("/users/{id}/ws/recommendations", recH.GetRecommendationsWS)

	r.Get("/products/lookup", prodH.Lookup)
	r.Get("/products/{id}/similar", prodH.GetSimilar)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Use(handler.AdminOnly())

		handler.MountAdminRoutes(r, adminH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
