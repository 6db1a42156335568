// File: services/doctor/interface.go
package doctor

import (
	"context"
	"fmt"

	doctorRepo "medisched/database/repository/doctor"
	"medisched/models"

	"github.com/go-redis/redis/v8"
)

// Service manages doctor accounts and authentication.
type Service interface {
	Register(ctx context.Context, req models.DoctorRegistrationRequest) (*models.DoctorAuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.DoctorAuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Doctor, error)
	Delete(ctx context.Context, id string) error
	RevokeAuthToken(ctx context.Context, id string) error
}

// DefaultDoctorService is the production implementation. AuthCache is
// the auth Redis DB holding verified token hashes; issuing or revoking
// a token must keep it in sync with the stored hash.
type DefaultDoctorService struct {
	Repo      doctorRepo.DoctorRepository
	AuthCache *redis.Client
}

// NewDefaultDoctorService wires the service with its dependencies.
func NewDefaultDoctorService(repo doctorRepo.DoctorRepository, authCache *redis.Client) (*DefaultDoctorService, error) {
	if repo == nil || authCache == nil {
		return nil, fmt.Errorf("doctor service initialization error: one or more dependencies are nil")
	}
	return &DefaultDoctorService{Repo: repo, AuthCache: authCache}, nil
}
