package models

// ProductInfo atributos descriptivos del producto original de un grupo
// de similitudes. Son constantes dentro del grupo, así que los separamos
// de los vecinos en vez de repetirlos fila por fila.
type ProductInfo struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     string `json:"price"`
	Rating    string `json:"rating,omitempty"`
	Link      string `json:"link,omitempty"`
}

// SimilarityRecord una fila de la tabla de similitudes (modelo Gensim).
// El rank precalculado manda: el query layer reordena por rank, no por
// score, para respetar lo que decidió el pipeline offline.
type SimilarityRecord struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     string  `json:"price"`
	Link      string  `json:"link,omitempty"`
	Score     float64 `json:"similarityScore"`
	Rank      int     `json:"rank"`
}

// SimilarItem vecino ya formateado para la respuesta HTTP.
type SimilarItem struct {
	ProductID int          `json:"productId"`
	Name      string       `json:"name"`
	Image     string       `json:"image,omitempty"`
	Price     PriceDisplay `json:"price"`
	Link      string       `json:"link,omitempty"`
	Score     float64      `json:"similarityScore"`
	Rank      int          `json:"rank"`
}

// SimilarProducts respuesta de /products/{id}/similar: el producto
// consultado más sus vecinos en orden de rank ascendente.
type SimilarProducts struct {
	Original ProductInfo   `json:"original"`
	Items    []SimilarItem `json:"items"`
}
