// File: services/doctor/auth.go
package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medisched/models"
	"medisched/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long a signed session token stays valid.
const tokenTTL = 72 * time.Hour

// Register creates a doctor account and signs them in.
func (s *DefaultDoctorService) Register(ctx context.Context, req models.DoctorRegistrationRequest) (*models.DoctorAuthResponse, error) {
	if existing, err := s.Repo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	doc := &models.Doctor{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Specialty:    req.Specialty,
		ClinicName:   req.ClinicName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	return s.issueToken(ctx, doc)
}

// Authenticate verifies credentials and issues a fresh token. The token
// hash is stored on the doctor record so the auth middleware can match
// presented tokens against the database.
func (s *DefaultDoctorService) Authenticate(ctx context.Context, email, password string) (*models.DoctorAuthResponse, error) {
	doc, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, doc)
}

// RevokeAuthToken clears the stored token hash and drops the auth cache
// entry, signing the doctor out everywhere immediately.
func (s *DefaultDoctorService) RevokeAuthToken(ctx context.Context, id string) error {
	if err := s.Repo.UpdateTokenHash(ctx, id, ""); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("Failed to drop auth cache entry on revoke",
			zap.String("doctorID", id), zap.Error(err))
	}
	return nil
}

func (s *DefaultDoctorService) issueToken(ctx context.Context, doc *models.Doctor) (*models.DoctorAuthResponse, error) {
	token, err := utils.GenerateToken(doc.ID, doc.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, doc.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	// Replace any cached hash from a previous session so the fresh token
	// verifies without waiting out the old entry's TTL.
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+doc.ID, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to refresh auth cache entry on sign-in",
			zap.String("doctorID", doc.ID), zap.Error(err))
	}
	return &models.DoctorAuthResponse{Doctor: *doc, Token: token}, nil
}
