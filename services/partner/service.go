// File: services/partner/service.go
package partner

import (
	"context"
	"errors"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a partner in the active state with an unverified phone and
// kicks off OTP delivery. Phone numbers are unique per account.
func (s *DefaultPartnerService) Register(ctx context.Context, req RegisterRequest) (*models.Partner, error) {
	if existing, err := s.Repo.GetByPhone(ctx, req.Phone); err == nil && existing != nil {
		return nil, utils.NewConflictError("phone number already registered")
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	p := &models.Partner{
		ID:        uuid.New().String(),
		Phone:     req.Phone,
		Email:     req.Email,
		Name:      req.Name,
		Security:  models.Security{PasswordHash: string(hash)},
		Status:    models.PartnerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := utils.InitiatePartnerOTP(p.ID, p.Phone); err != nil {
		utils.GetLogger().Error("failed to initiate partner OTP", zap.String("partnerId", p.ID), zap.Error(err))
	}

	p.Security = models.Security{}
	return p, nil
}

// VerifyOTP confirms the partner's phone number.
func (s *DefaultPartnerService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*models.Partner, error) {
	if _, err := s.getActive(ctx, req.PartnerID); err != nil {
		return nil, err
	}

	if err := utils.VerifyPartnerOTPRecord(req.PartnerID, req.OTP); err != nil {
		return nil, utils.NewValidationError("OTP verification failed")
	}

	updated, err := s.Repo.Update(ctx, req.PartnerID, map[string]interface{}{"phoneVerified": true})
	if err != nil {
		return nil, err
	}
	updated.Security = models.Security{}
	return updated, nil
}

// Authenticate checks credentials, issues a JWT and persists its hash on the
// partner document. Blocked or deleted partners cannot authenticate.
func (s *DefaultPartnerService) Authenticate(ctx context.Context, req AuthRequest) (*models.Partner, error) {
	p, err := s.Repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewValidationError("invalid phone or password")
		}
		return nil, err
	}
	if p.Status != models.PartnerStatusActive {
		return nil, utils.NewValidationError("invalid phone or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewValidationError("invalid phone or password")
	}

	token, err := utils.GenerateToken(p.ID, p.Phone, tokenTTL)
	if err != nil {
		return nil, utils.NewInternalError("failed to issue token", err)
	}
	if err := s.Repo.SetTokenHash(ctx, p.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}

	p.Security = models.Security{Token: token}
	return p, nil
}

// CompleteProfile fills in KYC, bank details and the category/service
// references, then marks the profile complete.
func (s *DefaultPartnerService) CompleteProfile(ctx context.Context, partnerID string, req CompleteProfileRequest) (*models.Partner, error) {
	if _, err := s.getActive(ctx, partnerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"kyc":              req.KYC,
		"bank":             req.Bank,
		"categoryId":       req.CategoryID,
		"subcategoryId":    req.SubcategoryID,
		"serviceIds":       req.ServiceIDs,
		"profileCompleted": true,
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.FCMToken != "" {
		updates["fcmToken"] = req.FCMToken
	}

	updated, err := s.Repo.Update(ctx, partnerID, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("partner not found")
		}
		return nil, err
	}

	utils.GetLogger().Info("partner profile completed", zap.String("partnerId", partnerID))
	updated.Security = models.Security{}
	return updated, nil
}

func (s *DefaultPartnerService) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	p, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Security = models.Security{}
	return p, nil
}

// RevokeToken clears the stored token hash, invalidating the session.
func (s *DefaultPartnerService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("partner not found")
		}
		return err
	}
	return nil
}

// Deactivate soft-deletes the partner account and invalidates any active
// session. The document stays in the collection with status "deleted".
func (s *DefaultPartnerService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.getActive(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.SetStatus(ctx, id, models.PartnerStatusDeleted); err != nil {
		return err
	}
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		return err
	}
	utils.GetLogger().Info("partner deactivated", zap.String("partnerId", id))
	return nil
}

func (s *DefaultPartnerService) getActive(ctx context.Context, id string) (*models.Partner, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("partner not found")
		}
		return nil, err
	}
	if p.Status == models.PartnerStatusDeleted {
		return nil, utils.NewNotFoundError("partner not found")
	}
	return p, nil
}
