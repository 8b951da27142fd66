package productControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

// fakeCache is an in-memory FeaturedCache.
type fakeCache struct {
	snapshot []models.Product
	getErr   error
	setErr   error
}

func (f *fakeCache) GetFeaturedProducts(context.Context) ([]models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshot, nil
}

func (f *fakeCache) SetFeaturedProducts(_ context.Context, products []models.Product) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.snapshot = products
	return nil
}

func setup(t *testing.T) (*gorm.DB, *fakeCache, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fc := &fakeCache{}
	r := gin.New()
	r.GET("/api/products/featured", GetFeaturedProducts(db, fc))
	r.GET("/api/products/recommendations", GetRecommendedProducts(db))
	r.GET("/api/products/category/:category", GetProductsByCategory(db))
	r.PATCH("/api/products/:id", ToggleFeaturedProduct(db, fc))
	return db, fc, r
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, featured bool) models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: "d", Price: 10, Image: "img", Category: category, IsFeatured: featured}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFeaturedProductsReadThrough(t *testing.T) {
	db, fc, r := setup(t)
	featured := seedProduct(t, db, "Lamp", "home", true)
	seedProduct(t, db, "Mug", "kitchen", false)

	// Miss populates the cache from the catalog.
	w := get(t, r, "/api/products/featured")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != featured.ID {
		t.Fatalf("featured = %+v, want the one featured product", got)
	}
	if len(fc.snapshot) != 1 {
		t.Errorf("cache snapshot = %d products, want 1", len(fc.snapshot))
	}

	// Hit serves the snapshot even when the catalog has moved on: there is
	// no invalidation besides the toggle write-through.
	if err := db.Model(&models.Product{}).Where("id = ?", featured.ID).Update("is_featured", false).Error; err != nil {
		t.Fatal(err)
	}
	w = get(t, r, "/api/products/featured")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("cached featured = %d products, want stale snapshot of 1", len(got))
	}
}

func TestFeaturedProductsCacheErrorDegradesToStore(t *testing.T) {
	db, fc, r := setup(t)
	seedProduct(t, db, "Lamp", "home", true)
	fc.getErr = context.DeadlineExceeded
	fc.setErr = context.DeadlineExceeded

	w := get(t, r, "/api/products/featured")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, cache failure must not fail the request", w.Code)
	}
}

func TestFeaturedProductsNotFound(t *testing.T) {
	db, _, r := setup(t)
	seedProduct(t, db, "Mug", "kitchen", false)

	w := get(t, r, "/api/products/featured")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when nothing is featured", w.Code)
	}
}

func TestToggleFeaturedWritesThrough(t *testing.T) {
	db, fc, r := setup(t)
	product := seedProduct(t, db, "Lamp", "home", false)

	req := httptest.NewRequest(http.MethodPatch, "/api/products/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !stored.IsFeatured {
		t.Error("product not toggled to featured")
	}
	if len(fc.snapshot) != 1 || fc.snapshot[0].ID != product.ID {
		t.Errorf("cache snapshot = %+v, want refreshed with the toggled product", fc.snapshot)
	}

	// Toggling back empties the snapshot.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/products/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(fc.snapshot) != 0 {
		t.Errorf("cache snapshot = %d products, want 0", len(fc.snapshot))
	}
}

func TestToggleFeaturedUnknownProduct(t *testing.T) {
	_, _, r := setup(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/products/42", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRecommendationsReturnAtMostFour(t *testing.T) {
	db, _, r := setup(t)
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		seedProduct(t, db, name, "misc", false)
	}

	w := get(t, r, "/api/products/recommendations")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("recommendations = %d, want 4", len(got))
	}
}

func TestProductsByCategory(t *testing.T) {
	db, _, r := setup(t)
	seedProduct(t, db, "Lamp", "home", false)
	seedProduct(t, db, "Mug", "kitchen", false)

	w := get(t, r, "/api/products/category/home")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Products) != 1 || resp.Products[0].Category != "home" {
		t.Errorf("products = %+v, want only the home category", resp.Products)
	}
}
