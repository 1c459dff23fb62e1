package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

type CreateUserRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required"`
	Phone    *string      `json:"phone"`
	Role     *domain.Role `json:"role"`
	Active   *bool        `json:"active"`
}

type UpdateRoleRequest struct {
	Role domain.Role `json:"role" validate:"required"`
}

// GetUser retorna um usuário; quem não é administrador só consulta a si mesmo
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		if userClaims.UserRole != domain.RoleAdmin && userClaims.UserID != id {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a consultar outro usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um usuário pelo painel. Papel e ativação informados são aplicados logo em seguida.
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if req.Role != nil && !req.Role.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRole, "Papel inválido", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		}, req.Password)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		if req.Role != nil || req.Active != nil {
			if err := service.UpdateUser(r.Context(), &domain.UpdateUserRequest{
				ID:     user.ID,
				Role:   req.Role,
				Active: req.Active,
			}); err != nil {
				logrus.Error(err)
				handleAuthError(w, err)
				return
			}
			if req.Role != nil {
				user.Role = *req.Role
			}
			if req.Active != nil {
				user.Active = *req.Active
			}
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// GetUserSummary devolve os totais de usuários por papel e presença
func GetUserSummary(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetUserSummary(r.Context())
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// UpdateUser atualiza dados cadastrais. Papel, ativação e exclusão exigem administrador.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		req.ID = id

		isAdmin := userClaims.UserRole == domain.RoleAdmin
		if !isAdmin {
			if userClaims.UserID != id {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar outro usuário", nil)
				return
			}
			if req.Role != nil || req.Active != nil || req.Deleted != nil {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores alteram papel, ativação ou exclusão", nil)
				return
			}
		}

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateUserRole troca o papel de outro usuário
func UpdateUserRole(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req UpdateRoleRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.UpdateUserRole(r.Context(), userClaims.UserID, id, req.Role); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
