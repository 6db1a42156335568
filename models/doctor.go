package models

import "time"

// Doctor represents a doctor account on the platform.
type Doctor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Specialty    string    `bson:"specialty" json:"specialty"`
	ClinicName   string    `bson:"clinicName,omitempty" json:"clinicName,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DoctorRegistrationRequest is the signup payload.
type DoctorRegistrationRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Specialty  string `json:"specialty" binding:"required"`
	ClinicName string `json:"clinicName"`
}

// DoctorAuthRequest is the login payload.
type DoctorAuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DoctorAuthResponse carries the signed token alongside the account.
type DoctorAuthResponse struct {
	Doctor Doctor `json:"doctor"`
	Token  string `json:"token"`
}
