// File: services/partner/interface.go
package partner

import (
	"context"

	partnerRepo "partnerhub/database/repository/partner"
	"partnerhub/models"
)

// RegisterRequest starts the partner lifecycle with a phone and password;
// OTP verification follows.
type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// AuthRequest exchanges credentials for a token.
type AuthRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest confirms a partner's phone number.
type VerifyOTPRequest struct {
	PartnerID string `json:"partnerId" binding:"required"`
	OTP       string `json:"otp" binding:"required"`
}

// CompleteProfileRequest fills in KYC, bank details and service references.
type CompleteProfileRequest struct {
	Name          string             `json:"name" binding:"required"`
	Email         string             `json:"email" binding:"omitempty,email"`
	KYC           models.KYCDetails  `json:"kyc" binding:"required"`
	Bank          models.BankDetails `json:"bank" binding:"required"`
	CategoryID    string             `json:"categoryId" binding:"required"`
	SubcategoryID string             `json:"subcategoryId"`
	ServiceIDs    []string           `json:"serviceIds"`
	FCMToken      string             `json:"fcmToken"`
}

type PartnerService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Partner, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*models.Partner, error)
	Authenticate(ctx context.Context, req AuthRequest) (*models.Partner, error)
	CompleteProfile(ctx context.Context, partnerID string, req CompleteProfileRequest) (*models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	RevokeToken(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
}

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Repo partnerRepo.PartnerRepository
}
