// File: services/partner/service_test.go
package partner

import (
	"context"
	"testing"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePartnerRepo struct {
	partners map[string]*models.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: map[string]*models.Partner{}}
}

func (f *fakePartnerRepo) Create(_ context.Context, p *models.Partner) error {
	cp := *p
	f.partners[p.ID] = &cp
	return nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id string) (*models.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakePartnerRepo) GetByPhone(_ context.Context, phone string) (*models.Partner, error) {
	for _, p := range f.partners {
		if p.Phone == phone {
			cp := *p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePartnerRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*models.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := updates["phoneVerified"].(bool); ok {
		p.PhoneVerified = v
	}
	if v, ok := updates["profileCompleted"].(bool); ok {
		p.ProfileCompleted = v
	}
	if v, ok := updates["name"].(string); ok {
		p.Name = v
	}
	cp := *p
	return &cp, nil
}

func (f *fakePartnerRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	p, ok := f.partners[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Security.TokenHash = tokenHash
	return nil
}

func (f *fakePartnerRepo) SetStatus(_ context.Context, id, status string) error {
	p, ok := f.partners[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Status = status
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active partner and strips credentials", func(t *testing.T) {
		repo := newFakePartnerRepo()
		svc := &DefaultPartnerService{Repo: repo}

		p, err := svc.Register(ctx, RegisterRequest{
			Phone:    "+919900112233",
			Password: "s3cret-pass",
			Name:     "Asha Cleaners",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PartnerStatusActive, p.Status)
		assert.False(t, p.PhoneVerified)
		assert.Empty(t, p.Security.Password)
		assert.Empty(t, p.Security.PasswordHash)

		stored := repo.partners[p.ID]
		require.NotNil(t, stored)
		assert.NotEmpty(t, stored.Security.PasswordHash)
		assert.NotEqual(t, "s3cret-pass", stored.Security.PasswordHash)
	})

	t.Run("duplicate phone conflicts", func(t *testing.T) {
		repo := newFakePartnerRepo()
		svc := &DefaultPartnerService{Repo: repo}

		_, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "pw-one"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "pw-two"})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T) (*fakePartnerRepo, *DefaultPartnerService, *models.Partner) {
		repo := newFakePartnerRepo()
		svc := &DefaultPartnerService{Repo: repo}
		p, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		require.NoError(t, err)
		return repo, svc, p
	}

	t.Run("issues a token and stores only its hash", func(t *testing.T) {
		repo, svc, reg := register(t)

		p, err := svc.Authenticate(ctx, AuthRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, p.Security.Token)
		assert.Empty(t, p.Security.PasswordHash)

		stored := repo.partners[reg.ID]
		assert.Equal(t, utils.HashToken(p.Security.Token), stored.Security.TokenHash)
	})

	t.Run("wrong password gets the uniform message", func(t *testing.T) {
		_, svc, _ := register(t)

		_, err := svc.Authenticate(ctx, AuthRequest{Phone: "+919900112233", Password: "wrong"})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, "invalid phone or password", apiErr.Message)
	})

	t.Run("unknown phone gets the same message as wrong password", func(t *testing.T) {
		_, svc, _ := register(t)

		_, err := svc.Authenticate(ctx, AuthRequest{Phone: "+910000000000", Password: "s3cret-pass"})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid phone or password", apiErr.Message)
	})

	t.Run("blocked partner cannot authenticate", func(t *testing.T) {
		repo, svc, reg := register(t)
		require.NoError(t, repo.SetStatus(ctx, reg.ID, models.PartnerStatusBlocked))

		_, err := svc.Authenticate(ctx, AuthRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid phone or password", apiErr.Message)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakePartnerRepo()
	svc := &DefaultPartnerService{Repo: repo}

	reg, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "s3cret-pass"})
	require.NoError(t, err)

	t.Run("active partner is returned without credentials", func(t *testing.T) {
		p, err := svc.GetByID(ctx, reg.ID)
		require.NoError(t, err)
		assert.Empty(t, p.Security.PasswordHash)
	})

	t.Run("deleted partner looks like not found", func(t *testing.T) {
		require.NoError(t, repo.SetStatus(ctx, reg.ID, models.PartnerStatusDeleted))

		_, err := svc.GetByID(ctx, reg.ID)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func TestRevokeToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakePartnerRepo()
	svc := &DefaultPartnerService{Repo: repo}

	reg, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "s3cret-pass"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, AuthRequest{Phone: "+919900112233", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, reg.ID))
	assert.Empty(t, repo.partners[reg.ID].Security.TokenHash)

	err = svc.RevokeToken(ctx, "missing")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deletes the account and clears the session", func(t *testing.T) {
		repo := newFakePartnerRepo()
		svc := &DefaultPartnerService{Repo: repo}

		reg, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		require.NoError(t, err)
		_, err = svc.Authenticate(ctx, AuthRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		require.NoError(t, err)

		require.NoError(t, svc.Deactivate(ctx, reg.ID))

		stored := repo.partners[reg.ID]
		require.NotNil(t, stored, "document must survive deactivation")
		assert.Equal(t, models.PartnerStatusDeleted, stored.Status)
		assert.Empty(t, stored.Security.TokenHash)

		_, err = svc.GetByID(ctx, reg.ID)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})

	t.Run("deactivating twice looks like not found", func(t *testing.T) {
		repo := newFakePartnerRepo()
		svc := &DefaultPartnerService{Repo: repo}

		reg, err := svc.Register(ctx, RegisterRequest{Phone: "+919900112233", Password: "s3cret-pass"})
		require.NoError(t, err)
		require.NoError(t, svc.Deactivate(ctx, reg.ID))

		err = svc.Deactivate(ctx, reg.ID)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}
