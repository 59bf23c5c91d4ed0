package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// LoginRequest é o payload de autenticação
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carrega o token JWT emitido no login
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest é o payload de cadastro de usuário
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login autentica o usuário e emite um token JWT
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			writeAuthError(w, logger, err)
			return
		}

		logger.WithField("email", req.Email).Info("login: usuário autenticado com sucesso")
		writeJSON(w, logger, LoginResponse{Token: token})
	})
}

// RegisterUser cadastra um novo usuário. Disponível apenas quando o
// cadastro está habilitado na configuração.
func RegisterUser(service authenticating.Authenticator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !cfg.Auth.RegisterOpened {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cadastro de usuários desabilitado", nil)
			return
		}

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(&domain.User{
			Name:  req.Name,
			Email: req.Email,
		}, req.Password)
		if err != nil {
			writeAuthError(w, logger, err)
			return
		}

		logger.WithField("user_id", user.ID).Info("login: usuário cadastrado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.WithError(err).Error("login: erro ao codificar resposta")
		}
	})
}

func writeAuthError(w http.ResponseWriter, logger log.Logger, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrDatabaseOperation || authErr.Code == apiErrors.ErrInternalServer {
			logger.WithError(err).Error("login: erro interno de autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	logger.WithError(err).Error("login: erro inesperado de autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar autenticação", nil)
}
