package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/store"
)

// mapSource sirve tablas desde memoria para no tocar disco en los tests.
type mapSource map[string]string

func (m mapSource) Fetch(_ context.Context, name string) (io.ReadCloser, error) {
	s, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no existe %s", name)
	}
	return io.NopCloser(strings.NewReader(s)), nil
}

const testRatings = "user_id\tuser\n1\tAnna\n2\tBob\n"

const testRecs = "user_id\tproduct_name\tlink\timage\tprice\trating\n" +
	"1\tShoe A\thttp://s/a\thttp://i/a\t19990\t4.8\n" +
	"1\tShoe B\thttp://s/b\thttp://i/b\tN/A\t4.8\n" +
	"1\tShoe C\thttp://s/c\thttp://i/c\t45000\t4.5\n"

const testSims = "original_product_id,original_product_name,original_image,original_price,original_rating,original_link,recommendation_rank,recommended_product_id,recommended_product_name,recommended_image,recommended_price,recommended_link,similarity_score\n" +
	"42,Blue Shirt,http://i/42,50000,4.5,http://s/42,1,101,Red Shirt,http://i/101,48000,http://s/101,0.91\n" +
	"42,Blue Shirt,http://i/42,50000,4.5,http://s/42,2,102,Green Shirt,http://i/102,N/A,http://s/102,0.87\n" +
	"42,Blue Shirt,http://i/42,50000,4.5,http://s/42,3,103,White Shirt,http://i/103,47000,http://s/103,0.80\n"

func newTestService(t *testing.T) *RecommendService {
	t.Helper()
	src := mapSource{
		"ratings":   testRatings,
		"user_recs": testRecs,
		"sims":      testSims,
	}
	st := store.New(src, store.Paths{
		Ratings:         "ratings",
		Recommendations: "user_recs",
		Similarities:    "sims",
	}, dataset.DefaultOptions())

	// historial nil: Mongo apagado en tests
	return NewRecommendService(st, nil)
}

func TestRecommendTopKWithFormattedPrices(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.Recommend(context.Background(), RecRequest{UserID: 1, K: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, se esperaba 2", len(items))
	}
	// empate 4.8/4.8 roto por orden de inserción
	if items[0].ProductName != "Shoe A" || items[1].ProductName != "Shoe B" {
		t.Errorf("orden = [%s, %s]", items[0].ProductName, items[1].ProductName)
	}
	if items[0].Price.Text != "19,990 VND" || !items[0].Price.Formatted {
		t.Errorf("precio formateado = %+v", items[0].Price)
	}
	if items[1].Price.Text != "N/A" || items[1].Price.Formatted {
		t.Errorf("precio crudo = %+v", items[1].Price)
	}
}

func TestRecommendDefaultAndMaxK(t *testing.T) {
	svc := newTestService(t)

	// K<=0 usa el default (5); solo hay 3 filas, salen las 3
	items, err := svc.Recommend(context.Background(), RecRequest{UserID: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("len(items) con K default = %d, se esperaba 3", len(items))
	}

	// K gigante se recorta a MaxK, no explota
	if _, err := svc.Recommend(context.Background(), RecRequest{UserID: 1, K: 1000}); err != nil {
		t.Errorf("Recommend con K=1000: %v", err)
	}
}

func TestRecommendAbsentUserEmptyNotError(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.Recommend(context.Background(), RecRequest{UserID: 999, K: 5})
	if err != nil {
		t.Fatalf("usuario ausente devolvió error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, se esperaba 0", len(items))
	}
}

func TestRecommendIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.Recommend(ctx, RecRequest{UserID: 1, K: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Recommend(ctx, RecRequest{UserID: 1, K: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("dos llamadas iguales devolvieron resultados distintos")
	}
}

func TestSimilarProducts(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.SimilarProducts(context.Background(), 42, 2)
	if err != nil {
		t.Fatalf("SimilarProducts: %v", err)
	}
	if out.Original.ProductID != 42 || out.Original.Name != "Blue Shirt" {
		t.Errorf("original = %+v", out.Original)
	}
	if len(out.Items) != 2 || out.Items[0].Rank != 1 || out.Items[1].Rank != 2 {
		t.Errorf("items = %+v, se esperaban ranks [1,2]", out.Items)
	}
	if out.Items[1].Price.Text != "N/A" || out.Items[1].Price.Formatted {
		t.Errorf("precio crudo del vecino = %+v", out.Items[1].Price)
	}
}

func TestSimilarProductsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SimilarProducts(context.Background(), 9999, 5)
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("err = %v, se esperaba ErrNotFound", err)
	}
}

func TestLookupProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.LookupProduct(ctx, "Blue Shirt")
	if err != nil || id != 42 {
		t.Errorf("LookupProduct = (%d, %v), se esperaba (42, nil)", id, err)
	}

	_, err = svc.LookupProduct(ctx, "No Existe")
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("err = %v, se esperaba ErrNotFound", err)
	}
}

func TestUserName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	name, err := svc.UserName(ctx, 1)
	if err != nil || name != "Anna" {
		t.Errorf("UserName(1) = (%q, %v)", name, err)
	}
	name, err = svc.UserName(ctx, 999)
	if err != nil || name != "Unknown" {
		t.Errorf("UserName(999) = (%q, %v), se esperaba Unknown", name, err)
	}
}

func TestReloadReturnsStats(t *testing.T) {
	svc := newTestService(t)

	stats, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if stats.Users != 2 || stats.UsersWithRecs != 1 || stats.ProductsWithSims != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDataUnavailablePropagates(t *testing.T) {
	st := store.New(mapSource{}, store.Paths{
		Ratings:         "ratings",
		Recommendations: "user_recs",
		Similarities:    "sims",
	}, dataset.DefaultOptions())
	svc := NewRecommendService(st, nil)

	_, err := svc.Recommend(context.Background(), RecRequest{UserID: 1})
	if !errors.Is(err, dataset.ErrDataUnavailable) {
		t.Errorf("err = %v, se esperaba ErrDataUnavailable", err)
	}
}
