// File: services/doctor/crud.go
package doctor

import (
	"context"
	"errors"
	"fmt"

	"medisched/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID fetches one doctor account.
func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}
	return doc, nil
}

// Update applies a whitelisted set of profile fields.
func (s *DefaultDoctorService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Doctor, error) {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for field, value := range updates {
		str, ok := value.(string)
		if !ok {
			continue
		}
		switch field {
		case "name":
			doc.Name = str
		case "specialty":
			doc.Specialty = str
		case "clinicName":
			doc.ClinicName = str
		}
	}

	if err := s.Repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doc, nil
}

// Delete removes the doctor account.
func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}
