package repository

import (
	"context"
	"time"

	"github.com/tuantrung97/spe-rec-system/internal/db"
	"github.com/tuantrung97/spe-rec-system/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository guarda cada respuesta de recomendaciones servida
// (colección rec_history). Si Mongo está deshabilitado todo es no-op.
type HistoryRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository() *HistoryRepository {
	if db.DB() == nil {
		return &HistoryRepository{}
	}
	return &HistoryRepository{col: db.DB().Collection("rec_history")}
}

// Enabled indica si hay backend de historial configurado.
func (r *HistoryRepository) Enabled() bool {
	return r.col != nil
}

func (r *HistoryRepository) Insert(ctx context.Context, h *models.RecHistory) error {
	if r.col == nil {
		return nil
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, h)
	return err
}

// FindByUser historial de un usuario, lo más reciente primero.
func (r *HistoryRepository) FindByUser(ctx context.Context, userID int, limit int64) ([]models.RecHistory, error) {
	if r.col == nil {
		return []models.RecHistory{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecHistory
	for cur.Next(ctx) {
		var h models.RecHistory
		if err := cur.Decode(&h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, cur.Err()
}
