package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationRecord es una fila de user_recs (salida del modelo ALS).
// Price se guarda crudo: en los CSV de Shopee a veces viene "N/A" o vacío,
// el formateo a "19,990 VND" se hace recién al responder.
type RecommendationRecord struct {
	UserID          int     `json:"userId"`
	ProductName     string  `json:"productName"`
	Link            string  `json:"link,omitempty"`
	Image           string  `json:"image,omitempty"`
	Price           string  `json:"price"`
	PredictedRating float64 `json:"predictedRating"`
}

// PriceDisplay resultado tipado del formateo de precio: o bien el valor
// numérico agrupado ("19,990 VND") o el texto original tal cual.
type PriceDisplay struct {
	Text      string `json:"text"`
	Formatted bool   `json:"formatted"`
}

// RecItem es lo que devolvemos por API: la recomendación ya con el
// precio listo para mostrar.
type RecItem struct {
	ProductName     string       `json:"productName"`
	Link            string       `json:"link,omitempty"`
	Image           string       `json:"image,omitempty"`
	Price           PriceDisplay `json:"price"`
	PredictedRating float64      `json:"predictedRating"`
}

// RecHistory documento de historial en Mongo (colección rec_history).
// Guardamos cada respuesta servida, igual que hacíamos con las
// recomendaciones de películas.
type RecHistory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int                `bson:"userId"        json:"userId"`
	UserName  string             `bson:"userName"      json:"userName"`
	K         int                `bson:"k"             json:"k"`
	Items     []RecItem          `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
