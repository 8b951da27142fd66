package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

func setup(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
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
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	r.GET("/protected", ProtectRoute(db), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	r.GET("/admin", ProtectRoute(db), AdminRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return db, r
}

func signToken(t *testing.T, userID uint, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"userId": userID, "exp": time.Now().Add(expiresIn).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func request(r *gin.Engine, path, token string, viaHeader bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		if viaHeader {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectRoute(t *testing.T) {
	db, r := setup(t)
	user := models.User{Name: "U", Email: "u@shop.test", Password: "hash", Role: models.RoleCustomer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	if w := request(r, "/protected", "", false); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}
	if w := request(r, "/protected", "not-a-token", false); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", w.Code)
	}
	if w := request(r, "/protected", signToken(t, user.ID, -time.Minute), false); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token status = %d, want 401", w.Code)
	}
	if w := request(r, "/protected", signToken(t, 9999, time.Hour), false); w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user status = %d, want 401", w.Code)
	}

	// Valid via cookie and via Authorization header.
	token := signToken(t, user.ID, time.Hour)
	if w := request(r, "/protected", token, false); w.Code != http.StatusOK {
		t.Errorf("cookie auth status = %d, want 200", w.Code)
	}
	if w := request(r, "/protected", token, true); w.Code != http.StatusOK {
		t.Errorf("header auth status = %d, want 200", w.Code)
	}
}

func TestAdminRoute(t *testing.T) {
	db, r := setup(t)
	customer := models.User{Name: "C", Email: "c@shop.test", Password: "hash", Role: models.RoleCustomer}
	admin := models.User{Name: "A", Email: "a@shop.test", Password: "hash", Role: models.RoleAdmin}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	if w := request(r, "/admin", signToken(t, customer.ID, time.Hour), false); w.Code != http.StatusForbidden {
		t.Errorf("customer status = %d, want 403", w.Code)
	}
	if w := request(r, "/admin", signToken(t, admin.ID, time.Hour), false); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
