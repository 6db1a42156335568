package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medisched/models"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeDoctorRepo struct {
	doctor *models.Doctor
}

func (f *fakeDoctorRepo) Create(_ context.Context, doc *models.Doctor) error { f.doctor = doc; return nil }

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.ID == id {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) GetByEmail(_ context.Context, email string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.Email == email {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) GetByTokenHash(_ context.Context, hash string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.TokenHash != "" && f.doctor.TokenHash == hash {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) Update(_ context.Context, doc *models.Doctor) error { f.doctor = doc; return nil }

func (f *fakeDoctorRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	if f.doctor == nil || f.doctor.ID != id {
		return mongo.ErrNoDocuments
	}
	f.doctor.TokenHash = hash
	return nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id string) error {
	if f.doctor == nil || f.doctor.ID != id {
		return mongo.ErrNoDocuments
	}
	f.doctor = nil
	return nil
}

func (f *fakeDoctorRepo) EnsureIndexes() error { return nil }

// unreachableRedis returns a client whose every command fails fast, so
// the middleware exercises its database-fallback path.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		ReadTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newAuthTestRouter(repo *fakeDoctorRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthDoctorMiddleware(repo), func(c *gin.Context) {
		id, _ := c.Get("doctorID")
		c.JSON(http.StatusOK, gin.H{"doctorID": id})
	})
	return r
}

func TestJWTAuthDoctorMiddleware_ValidToken(t *testing.T) {
	utils.AuthCacheClient = unreachableRedis()

	token, err := utils.GenerateToken("doc-1", "doc@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	repo := &fakeDoctorRepo{doctor: &models.Doctor{
		ID:        "doc-1",
		Email:     "doc@example.com",
		TokenHash: utils.HashToken(token),
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthTestRouter(repo).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestJWTAuthDoctorMiddleware_MissingHeader(t *testing.T) {
	utils.AuthCacheClient = unreachableRedis()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newAuthTestRouter(&fakeDoctorRepo{}).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuthDoctorMiddleware_RevokedToken(t *testing.T) {
	utils.AuthCacheClient = unreachableRedis()

	token, err := utils.GenerateToken("doc-1", "doc@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	// Stored hash cleared: a signature-valid token must still be refused.
	repo := &fakeDoctorRepo{doctor: &models.Doctor{
		ID:    "doc-1",
		Email: "doc@example.com",
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthTestRouter(repo).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", w.Code)
	}
}

func TestJWTAuthDoctorMiddleware_MalformedToken(t *testing.T) {
	utils.AuthCacheClient = unreachableRedis()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	newAuthTestRouter(&fakeDoctorRepo{}).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed token, got %d", w.Code)
	}
}
