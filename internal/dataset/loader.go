package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/tuantrung97/spe-rec-system/internal/models"
)

// Columnas requeridas por tabla. Si falta alguna en la cabecera la carga
// falla con ErrSchema.
var (
	ratingCols = []string{"user_id", "user"}
	recCols    = []string{"user_id", "product_name", "link", "image", "price", "rating"}
	simCols    = []string{
		"original_product_id", "original_product_name", "original_image",
		"original_price", "original_rating", "original_link",
		"recommendation_rank", "recommended_product_id", "recommended_product_name",
		"recommended_image", "recommended_price", "recommended_link",
		"similarity_score",
	}
)

// Options delimitadores por tabla. Los CSV de Shopee vienen mezclados:
// ratings y user_recs son TSV, la tabla de similitudes es CSV normal.
type Options struct {
	RatingsSep rune
	RecsSep    rune
	SimsSep    rune
}

func DefaultOptions() Options {
	return Options{RatingsSep: '\t', RecsSep: '\t', SimsSep: ','}
}

type simGroup struct {
	original models.ProductInfo
	items    []models.SimilarityRecord
}

// Dataset tablas validadas e indexadas, inmutables después de Load.
// Todas las consultas son lookups de mapa + slicing, sin IO.
type Dataset struct {
	usersByID     map[int]models.UserRecord
	recsByUser    map[int][]models.RecommendationRecord
	simsByProduct map[int]simGroup
	idByName      map[string]int

	// user_id en orden de primera aparición, para muestras deterministas
	userOrder []int
	bounds    models.UserIDBounds

	stats models.LoadStats
}

// Load parsea las tres tablas y construye los índices. Una fila que no
// parsea (columnas de menos, numérico requerido ilegible) se salta y se
// cuenta; una fila con campo opcional vacío (imagen, precio no numérico)
// se queda tal cual.
func Load(ratings, recs, sims io.Reader, opts Options) (*Dataset, error) {
	ds := &Dataset{
		usersByID:     make(map[int]models.UserRecord),
		recsByUser:    make(map[int][]models.RecommendationRecord),
		simsByProduct: make(map[int]simGroup),
		idByName:      make(map[string]int),
	}

	if err := ds.loadRatings(ratings, opts.RatingsSep); err != nil {
		return nil, err
	}
	if err := ds.loadRecs(recs, opts.RecsSep); err != nil {
		return nil, err
	}
	if err := ds.loadSims(sims, opts.SimsSep); err != nil {
		return nil, err
	}

	// orden final de cada grupo: rating descendente para recomendaciones
	// (empates quedan en orden de inserción), rank ascendente para
	// similitudes (el rank precalculado manda, no el score).
	for uid := range ds.recsByUser {
		g := ds.recsByUser[uid]
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].PredictedRating > g[j].PredictedRating
		})
	}
	for pid := range ds.simsByProduct {
		g := ds.simsByProduct[pid]
		sort.SliceStable(g.items, func(i, j int) bool {
			return g.items[i].Rank < g.items[j].Rank
		})
		ds.simsByProduct[pid] = g
	}

	ds.stats.Users = len(ds.usersByID)
	ds.stats.UsersWithRecs = len(ds.recsByUser)
	ds.stats.ProductsWithSims = len(ds.simsByProduct)

	log.Printf("[dataset] carga ok: users=%d usersConRecs=%d productosConSims=%d saltadas=%d/%d/%d",
		ds.stats.Users, ds.stats.UsersWithRecs, ds.stats.ProductsWithSims,
		ds.stats.Ratings.RowsSkipped, ds.stats.Recommendations.RowsSkipped,
		ds.stats.Similarities.RowsSkipped)

	return ds, nil
}

// newReader csv.Reader tolerante: columnas variables y comillas sueltas
// (los nombres de producto traen de todo).
func newReader(r io.Reader, sep rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// readHeader lee la cabecera y ubica las columnas requeridas.
func readHeader(cr *csv.Reader, table string, required []string) (map[string]int, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: tabla %s vacía o ilegible: %v", ErrDataUnavailable, table, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: tabla %s no tiene columna %q", ErrSchema, table, col)
		}
	}
	return idx, nil
}

// field devuelve la columna `col` de la fila, o "" si la fila es corta.
func field(row []string, idx map[string]int, col string) (string, bool) {
	i := idx[col]
	if i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func (ds *Dataset) loadRatings(r io.Reader, sep rune) error {
	cr := newReader(r, sep)
	idx, err := readHeader(cr, "ratings", ratingCols)
	if err != nil {
		return err
	}

	st := &ds.stats.Ratings
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			st.RowsSkipped++
			continue
		}

		rawID, ok := field(row, idx, "user_id")
		if !ok {
			st.RowsSkipped++
			continue
		}
		uid, err := strconv.Atoi(rawID)
		if err != nil {
			st.RowsSkipped++
			continue
		}
		name, _ := field(row, idx, "user")

		st.RowsKept++

		// primer nombre visto gana; filas posteriores con otro nombre
		// para el mismo id se ignoran para el mapeo
		if _, seen := ds.usersByID[uid]; !seen {
			ds.usersByID[uid] = models.UserRecord{UserID: uid, Name: name}
			ds.userOrder = append(ds.userOrder, uid)

			if len(ds.userOrder) == 1 {
				ds.bounds = models.UserIDBounds{Min: uid, Max: uid}
			} else {
				if uid < ds.bounds.Min {
					ds.bounds.Min = uid
				}
				if uid > ds.bounds.Max {
					ds.bounds.Max = uid
				}
			}
		}
	}
	return nil
}

func (ds *Dataset) loadRecs(r io.Reader, sep rune) error {
	cr := newReader(r, sep)
	idx, err := readHeader(cr, "user_recs", recCols)
	if err != nil {
		return err
	}

	st := &ds.stats.Recommendations
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			st.RowsSkipped++
			continue
		}

		rawID, ok := field(row, idx, "user_id")
		if !ok {
			st.RowsSkipped++
			continue
		}
		uid, err := strconv.Atoi(rawID)
		if err != nil {
			st.RowsSkipped++
			continue
		}

		rawRating, _ := field(row, idx, "rating")
		rating, err := strconv.ParseFloat(rawRating, 64)
		if err != nil {
			st.RowsSkipped++
			continue
		}

		name, _ := field(row, idx, "product_name")
		link, _ := field(row, idx, "link")
		image, _ := field(row, idx, "image")
		// price se queda crudo: "N/A" y vacío son valores válidos aquí
		price, _ := field(row, idx, "price")

		st.RowsKept++
		ds.recsByUser[uid] = append(ds.recsByUser[uid], models.RecommendationRecord{
			UserID:          uid,
			ProductName:     name,
			Link:            link,
			Image:           image,
			Price:           price,
			PredictedRating: rating,
		})
	}
	return nil
}

func (ds *Dataset) loadSims(r io.Reader, sep rune) error {
	cr := newReader(r, sep)
	idx, err := readHeader(cr, "similarities", simCols)
	if err != nil {
		return err
	}

	st := &ds.stats.Similarities
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			st.RowsSkipped++
			continue
		}

		rawOrig, ok := field(row, idx, "original_product_id")
		if !ok {
			st.RowsSkipped++
			continue
		}
		origID, err := strconv.Atoi(rawOrig)
		if err != nil {
			st.RowsSkipped++
			continue
		}
		rawRec, _ := field(row, idx, "recommended_product_id")
		recID, err := strconv.Atoi(rawRec)
		if err != nil {
			st.RowsSkipped++
			continue
		}
		rawRank, _ := field(row, idx, "recommendation_rank")
		rank, err := strconv.Atoi(rawRank)
		if err != nil {
			st.RowsSkipped++
			continue
		}
		rawScore, _ := field(row, idx, "similarity_score")
		score, err := strconv.ParseFloat(rawScore, 64)
		if err != nil {
			st.RowsSkipped++
			continue
		}

		st.RowsKept++

		g, seen := ds.simsByProduct[origID]
		if !seen {
			name, _ := field(row, idx, "original_product_name")
			image, _ := field(row, idx, "original_image")
			price, _ := field(row, idx, "original_price")
			rating, _ := field(row, idx, "original_rating")
			link, _ := field(row, idx, "original_link")
			g.original = models.ProductInfo{
				ProductID: origID,
				Name:      name,
				Image:     image,
				Price:     price,
				Rating:    rating,
				Link:      link,
			}
			// índice nombre -> id: primera aparición en el archivo gana
			// (los nombres no son únicos en la data de origen)
			if _, dup := ds.idByName[name]; !dup && name != "" {
				ds.idByName[name] = origID
			}
		}

		name, _ := field(row, idx, "recommended_product_name")
		image, _ := field(row, idx, "recommended_image")
		price, _ := field(row, idx, "recommended_price")
		link, _ := field(row, idx, "recommended_link")

		g.items = append(g.items, models.SimilarityRecord{
			ProductID: recID,
			Name:      name,
			Image:     image,
			Price:     price,
			Link:      link,
			Score:     score,
			Rank:      rank,
		})
		ds.simsByProduct[origID] = g
	}
	return nil
}

// ================== consultas (solo lectura) ==================

// User devuelve el registro del usuario, si existe.
func (ds *Dataset) User(userID int) (models.UserRecord, bool) {
	u, ok := ds.usersByID[userID]
	return u, ok
}

// RecommendationsFor top-`limit` del grupo pre-ordenado del usuario.
// Usuario ausente => slice vacío, nunca error.
func (ds *Dataset) RecommendationsFor(userID, limit int) []models.RecommendationRecord {
	if limit < 0 {
		limit = 0
	}
	g := ds.recsByUser[userID]
	if limit < len(g) {
		g = g[:limit]
	}
	return g
}

// SimilarTo vecinos del producto en orden de rank ascendente, más la
// info del producto original. Producto ausente => ErrNotFound.
func (ds *Dataset) SimilarTo(productID, limit int) (models.ProductInfo, []models.SimilarityRecord, error) {
	g, ok := ds.simsByProduct[productID]
	if !ok {
		return models.ProductInfo{}, nil, fmt.Errorf("%w: productId=%d", ErrNotFound, productID)
	}
	if limit < 0 {
		limit = 0
	}
	items := g.items
	if limit < len(items) {
		items = items[:limit]
	}
	return g.original, items, nil
}

// ProductIDByName resuelve un nombre al id de producto original.
// Con nombres duplicados gana la primera aparición en el archivo.
func (ds *Dataset) ProductIDByName(name string) (int, bool) {
	id, ok := ds.idByName[strings.TrimSpace(name)]
	return id, ok
}

// SampleUsers muestra determinista de n usuarios distintos (semilla
// fija, igual que el random_state=42 de la app original). Con el mismo
// dataset siempre salen los mismos.
func (ds *Dataset) SampleUsers(n int) []models.UserRecord {
	order := make([]int, len(ds.userOrder))
	copy(order, ds.userOrder)

	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	if n < 0 {
		n = 0
	}
	if n > len(order) {
		n = len(order)
	}
	out := make([]models.UserRecord, 0, n)
	for _, uid := range order[:n] {
		out = append(out, ds.usersByID[uid])
	}
	return out
}

// Bounds rango observado de user_id.
func (ds *Dataset) Bounds() models.UserIDBounds {
	return ds.bounds
}

// Stats conteos de la carga.
func (ds *Dataset) Stats() models.LoadStats {
	return ds.stats
}
