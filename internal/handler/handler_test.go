package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/models"
	"github.com/tuantrung97/spe-rec-system/internal/service"
	"github.com/tuantrung97/spe-rec-system/internal/store"

	"github.com/go-chi/chi/v5"
)

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
	"42,Blue Shirt,http://i/42,50000,4.5,http://s/42,2,102,Green Shirt,http://i/102,52000,http://s/102,0.87\n"

const testJWTSecret = "secret-de-test"
const testAdminPass = "clave-admin"

func newTestRouter(t *testing.T) http.Handler {
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

	recSvc := service.NewRecommendService(st, nil)
	authSvc := service.NewAuthService(testAdminPass, testJWTSecret)

	authH := NewAuthHandler(authSvc)
	userH := NewUserHandler(recSvc)
	recH := NewRecommendHandler(recSvc)
	prodH := NewProductHandler(recSvc)
	adminH := NewAdminHandler(recSvc)

	r := chi.NewRouter()
	r.Get("/health", Health)
	r.Post("/auth/login", authH.Login)
	r.Get("/users/sample", userH.Sample)
	r.Get("/users/bounds", userH.Bounds)
	r.Get("/users/{id}/recommendations", recH.GetRecommendations)
	r.Get("/products/lookup", prodH.Lookup)
	r.Get("/products/{id}/similar", prodH.GetSimilar)

	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testJWTSecret))
		r.Use(AdminOnly())
		MountAdminRoutes(r, adminH)
	})

	return r
}

func doGET(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetRecommendations(t *testing.T) {
	h := newTestRouter(t)

	rec := doGET(t, h, "/users/1/recommendations?k=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		UserID int              `json:"userId"`
		User   string           `json:"user"`
		Items  []models.RecItem `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no es JSON: %v", err)
	}
	if resp.User != "Anna" || resp.UserID != 1 {
		t.Errorf("user = %q id = %d", resp.User, resp.UserID)
	}
	if len(resp.Items) != 2 || resp.Items[0].ProductName != "Shoe A" {
		t.Errorf("items = %+v", resp.Items)
	}
	if resp.Items[0].Price.Text != "19,990 VND" {
		t.Errorf("precio = %+v", resp.Items[0].Price)
	}
}

func TestGetRecommendationsUnknownUserIsEmptyList(t *testing.T) {
	h := newTestRouter(t)

	rec := doGET(t, h, "/users/999/recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, un usuario desconocido no es error", rec.Code)
	}
	var resp struct {
		User  string           `json:"user"`
		Items []models.RecItem `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.User != "Unknown" || len(resp.Items) != 0 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetSimilar(t *testing.T) {
	h := newTestRouter(t)

	rec := doGET(t, h, "/products/42/similar?k=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.SimilarProducts
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Original.ProductID != 42 {
		t.Errorf("original = %+v", resp.Original)
	}
	if len(resp.Items) != 2 || resp.Items[0].Rank != 1 {
		t.Errorf("items = %+v", resp.Items)
	}
}

func TestGetSimilarUnknownProductIs404(t *testing.T) {
	h := newTestRouter(t)

	if rec := doGET(t, h, "/products/9999/similar"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, se esperaba 404", rec.Code)
	}
}

func TestLookup(t *testing.T) {
	h := newTestRouter(t)

	if rec := doGET(t, h, "/products/lookup"); rec.Code != http.StatusBadRequest {
		t.Errorf("sin name: status = %d, se esperaba 400", rec.Code)
	}

	rec := doGET(t, h, "/products/lookup?name=Blue+Shirt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["productId"] != 42 {
		t.Errorf("productId = %d", resp["productId"])
	}

	if rec := doGET(t, h, "/products/lookup?name=NoExiste"); rec.Code != http.StatusNotFound {
		t.Errorf("nombre desconocido: status = %d, se esperaba 404", rec.Code)
	}
}

func TestSampleAndBounds(t *testing.T) {
	h := newTestRouter(t)

	rec := doGET(t, h, "/users/sample?n=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var users []models.UserRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Errorf("len(users) = %d", len(users))
	}

	rec = doGET(t, h, "/users/bounds")
	var b models.UserIDBounds
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if b.Min != 1 || b.Max != 2 {
		t.Errorf("bounds = %+v", b)
	}
}

func TestAdminRequiresJWT(t *testing.T) {
	h := newTestRouter(t)

	if rec := doGET(t, h, "/admin/stats"); rec.Code != http.StatusUnauthorized {
		t.Errorf("sin token: status = %d, se esperaba 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer token-trucho")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("token inválido: status = %d, se esperaba 401", rec.Code)
	}
}

func login(t *testing.T, h http.Handler, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginAndAdminAccess(t *testing.T) {
	h := newTestRouter(t)

	if rec := login(t, h, "clave-mala"); rec.Code != http.StatusUnauthorized {
		t.Errorf("clave mala: status = %d, se esperaba 401", rec.Code)
	}

	rec := login(t, h, testAdminPass)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	token := resp["token"]
	if token == "" {
		t.Fatal("login no devolvió token")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	h.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("admin con token: status = %d, body = %s", out.Code, out.Body.String())
	}

	var stats models.LoadStats
	if err := json.Unmarshal(out.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Users != 2 || stats.ProductsWithSims != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestAdminReload(t *testing.T) {
	h := newTestRouter(t)

	rec := login(t, h, testAdminPass)
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	out := httptest.NewRecorder()
	h.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("reload: status = %d, body = %s", out.Code, out.Body.String())
	}
}
