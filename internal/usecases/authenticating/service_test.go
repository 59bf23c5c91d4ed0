package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

type userRepoStub struct {
	byEmail map[string]*domain.User
}

func (r *userRepoStub) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = "USR001"
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *userRepoStub) GetUserByEmail(email string) (*domain.User, error) {
	return r.byEmail[email], nil
}

func (r *userRepoStub) GetUserByID(userID string) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTLHours = 1
	cfg.Auth.BcryptCost = 4 // custo mínimo para testes rápidos
	return cfg
}

func TestLoginRoundTrip(t *testing.T) {
	repo := &userRepoStub{byEmail: make(map[string]*domain.User)}
	service := NewService(repo, testConfig())

	created, err := service.CreateUser(&domain.User{
		Name:  "Marie",
		Email: "  Marie@Salon.FR ",
	}, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "marie@salon.fr", created.Email)
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.True(t, created.Active)

	token, err := service.LoginUser("marie@salon.fr", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USR001", claims.UserID)
	assert.Equal(t, "marie@salon.fr", claims.UserEmail)
}

func TestLoginUser_Failures(t *testing.T) {
	repo := &userRepoStub{byEmail: make(map[string]*domain.User)}
	service := NewService(repo, testConfig())

	_, err := service.CreateUser(&domain.User{Name: "Marie", Email: "marie@salon.fr"}, "s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "senha incorreta", email: "marie@salon.fr", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "usuário inexistente", email: "nobody@salon.fr", password: "s3cret", wantErr: ErrUserNotFound},
		{name: "dados ausentes", email: "", password: "", wantErr: ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.LoginUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &userRepoStub{byEmail: make(map[string]*domain.User)}
	service := NewService(repo, testConfig())

	_, err := service.CreateUser(&domain.User{Name: "Marie", Email: "marie@salon.fr"}, "s3cret")
	require.NoError(t, err)

	_, err = service.CreateUser(&domain.User{Name: "Autre", Email: "MARIE@salon.fr"}, "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser_DisabledAccount(t *testing.T) {
	repo := &userRepoStub{byEmail: make(map[string]*domain.User)}
	service := NewService(repo, testConfig())

	created, err := service.CreateUser(&domain.User{Name: "Marie", Email: "marie@salon.fr"}, "s3cret")
	require.NoError(t, err)
	created.Active = false

	_, err = service.LoginUser("marie@salon.fr", "s3cret")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateToken_Garbage(t *testing.T) {
	repo := &userRepoStub{byEmail: make(map[string]*domain.User)}
	service := NewService(repo, testConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
