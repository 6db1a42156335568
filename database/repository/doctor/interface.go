// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"medisched/database"
	"medisched/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository persists doctor accounts.
type DoctorRepository interface {
	Create(ctx context.Context, doc *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Doctor, error)
	Update(ctx context.Context, doc *models.Doctor) error
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
