package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL         = 24 * time.Hour
	generatedPasswordLength = 12
)

type Authenticator interface {
	CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error
	UpdateUserRole(ctx context.Context, requestUserID, targetUserID int, role domain.Role) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUserSummary(ctx context.Context) (*domain.UserSummary, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, userID int) error
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepository repository.UserRepository
	secretKey      []byte
	tokenTTL       time.Duration
	hashCost       int
	now            func() time.Time
}

func NewService(cfg *config.Config, userRepository repository.UserRepository) *Service {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		userRepository: userRepository,
		secretKey:      []byte(cfg.SecretKey),
		tokenTTL:       ttl,
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
	}
}

// CreateUser registra um novo usuário. Contas novas nascem inativas com papel usuario
// e só entram após aprovação de um administrador.
func (s *Service) CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = normalizeEmail(user.Email)
	if user.Name == "" || user.Email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "nome, email e senha são obrigatórios")
	}

	if err := s.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	existing, err := s.userRepository.GetUserByEmail(ctx, user.Email)
	if err != nil {
		logrus.WithError(err).WithField("email", user.Email).Error("Erro ao verificar email existente")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar email")
	}
	if existing != nil {
		return nil, NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, existing.ID, user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Falha ao gerar hash da senha")
	}

	user.PasswordHash = string(hash)
	user.Role = domain.RoleClient
	user.Active = false

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).WithField("email", user.Email).Error("Erro ao criar usuário")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar usuário")
	}

	created.PasswordHash = ""
	return created, nil
}

// UpdateUser aplica somente os campos presentes na requisição
func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error {
	user, err := s.getUser(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.PhotoURL != nil {
		user.PhotoURL = req.PhotoURL
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return NewUserAuthError(ErrInvalidRole, apiErrors.ErrInvalidRole, req.ID, string(*req.Role))
		}
		user.Role = *req.Role
	}
	if req.Deleted != nil && *req.Deleted {
		now := s.now()
		user.Deleted = true
		user.DeletedAt = &now
		user.Active = false
	}

	// o hash não é reescrito pelo update de perfil
	user.PasswordHash = ""

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logrus.WithError(err).WithField("user_id", req.ID).Error("Erro ao atualizar usuário")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, "Falha ao atualizar usuário")
	}

	return nil
}

func (s *Service) UpdateUserRole(ctx context.Context, requestUserID, targetUserID int, role domain.Role) error {
	if !role.IsValid() {
		return NewUserAuthError(ErrInvalidRole, apiErrors.ErrInvalidRole, targetUserID, string(role))
	}
	if requestUserID == targetUserID {
		return NewUserAuthError(ErrSelfRoleChange, apiErrors.ErrInsufficientPrivilege, targetUserID, "")
	}

	if err := s.userRepository.UpdateRole(ctx, targetUserID, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, targetUserID, "")
		}
		logrus.WithError(err).WithField("user_id", targetUserID).Error("Erro ao atualizar papel")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, targetUserID, "Falha ao atualizar papel")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": requestUserID,
		"user_id":  targetUserID,
		"role":     role,
	}).Info("Papel do usuário atualizado")

	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar usuários")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar usuários")
	}

	return users, nil
}

// GetUserSummary ignora usuários removidos
func (s *Service) GetUserSummary(ctx context.Context) (*domain.UserSummary, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.UserSummary{ByRole: make(map[domain.Role]int, len(domain.Roles))}
	for _, role := range domain.Roles {
		summary.ByRole[role] = 0
	}

	for _, user := range users {
		if user.Deleted {
			continue
		}
		summary.Total++
		summary.ByRole[user.Role]++
		if user.Status == domain.StatusConnected {
			summary.Connected++
		} else {
			summary.Disconnected++
		}
	}

	return summary, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).WithField("email", email).Error("Erro ao buscar usuário por email")
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar usuário")
	}

	if user == nil || user.Deleted {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewUserAuthError(err, apiErrors.ErrInternalServer, user.ID, "Falha ao gerar token")
	}

	now := s.now()
	if err := s.userRepository.UpdatePresence(ctx, user.ID, domain.StatusConnected, &now); err != nil {
		// o login segue válido mesmo sem registrar a presença
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Falha ao registrar presença do usuário")
	}

	return token, nil
}

func (s *Service) Logout(ctx context.Context, userID int) error {
	if err := s.userRepository.UpdatePresence(ctx, userID, domain.StatusDisconnected, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao registrar logout")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}

	return nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// GenerateStrongPassword redefine a senha de outro usuário. Somente administradores.
func (s *Service) GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error) {
	requester, err := s.getUser(ctx, requestUserID)
	if err != nil {
		return "", err
	}
	if requester.Role != domain.RoleAdmin {
		return "", NewUserAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, requestUserID, "")
	}

	target, err := s.getUser(ctx, targetUserID)
	if err != nil {
		return "", err
	}

	password, err := generateStrongPassword(generatedPasswordLength)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Falha ao gerar senha")
	}

	if err := s.storePassword(ctx, target, password); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": requestUserID,
		"user_id":  targetUserID,
	}).Info("Senha redefinida pelo administrador")

	return password, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrWrongPassword, apiErrors.ErrInvalidCredentials, userID, "")
	}

	return s.storePassword(ctx, user, newPassword)
}

func (s *Service) ValidatePasswordStrength(password string) error {
	if msg := passwordStrengthError(password); msg != "" {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, msg)
	}
	return nil
}

func (s *Service) storePassword(ctx context.Context, user *domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "Falha ao gerar hash da senha")
	}

	user.PasswordHash = string(hash)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Erro ao salvar senha")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, user.ID, "Falha ao salvar senha")
	}

	return nil
}

func (s *Service) getUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao buscar usuário")
	}
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := &domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
