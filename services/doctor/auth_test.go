// File: services/doctor/auth_test.go
package doctor

import (
	"context"
	"testing"
	"time"

	"medisched/models"
	"medisched/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	doctor *models.Doctor
}

func (f *fakeRepo) Create(_ context.Context, doc *models.Doctor) error { f.doctor = doc; return nil }

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.ID == id {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.Email == email {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) GetByTokenHash(_ context.Context, hash string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.TokenHash != "" && f.doctor.TokenHash == hash {
		return f.doctor, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) Update(_ context.Context, doc *models.Doctor) error { f.doctor = doc; return nil }

func (f *fakeRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	if f.doctor == nil || f.doctor.ID != id {
		return mongo.ErrNoDocuments
	}
	f.doctor.TokenHash = hash
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.doctor == nil || f.doctor.ID != id {
		return mongo.ErrNoDocuments
	}
	f.doctor = nil
	return nil
}

func (f *fakeRepo) EnsureIndexes() error { return nil }

// Commands against this client fail fast; the service must tolerate an
// unavailable auth cache and keep the repository authoritative.
func testAuthCache() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		ReadTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestService(t *testing.T, repo *fakeRepo) *DefaultDoctorService {
	t.Helper()
	svc, err := NewDefaultDoctorService(repo, testAuthCache())
	if err != nil {
		t.Fatalf("NewDefaultDoctorService: %v", err)
	}
	return svc
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, models.DoctorRegistrationRequest{
		Name:      "Dr. Adams",
		Email:     "adams@example.com",
		Password:  "correct-horse",
		Specialty: "Cardiology",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a session token on registration")
	}
	if repo.doctor.TokenHash != utils.HashToken(resp.Token) {
		t.Fatalf("stored token hash does not match issued token")
	}
	if repo.doctor.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}

	authed, err := svc.Authenticate(ctx, "adams@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.Doctor.ID != repo.doctor.ID {
		t.Fatalf("authenticated wrong doctor")
	}

	if _, err := svc.Authenticate(ctx, "adams@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "x"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &fakeRepo{doctor: &models.Doctor{ID: "doc-1", Email: "taken@example.com"}}
	svc := newTestService(t, repo)

	_, err := svc.Register(context.Background(), models.DoctorRegistrationRequest{
		Name:     "Dr. Baker",
		Email:    "taken@example.com",
		Password: "pw",
	})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRevokeAuthToken_ClearsStoredHash(t *testing.T) {
	repo := &fakeRepo{doctor: &models.Doctor{ID: "doc-1", Email: "a@example.com", TokenHash: "somehash"}}
	svc := newTestService(t, repo)

	if err := svc.RevokeAuthToken(context.Background(), "doc-1"); err != nil {
		t.Fatalf("RevokeAuthToken: %v", err)
	}
	if repo.doctor.TokenHash != "" {
		t.Fatalf("token hash not cleared on revoke")
	}

	if err := svc.RevokeAuthToken(context.Background(), "missing"); err != ErrDoctorNotFound {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
