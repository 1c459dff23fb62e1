package authenticating

import (
	"errors"
	"fmt"
	"slices"
)

// sessão e credenciais
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
)

// cadastro e papéis
var (
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidRole           = errors.New("papel inválido")
	ErrSelfRoleChange        = errors.New("um administrador não pode alterar o próprio papel")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")
)

// senhas
var (
	ErrWeakPassword  = errors.New("senha fraca")
	ErrWrongPassword = errors.New("senha atual incorreta")
	ErrSamePassword  = errors.New("nova senha deve ser diferente da atual")
)

var ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

var (
	credentialErrors    = []error{ErrInvalidCredentials, ErrUserDisabled}
	authorizationErrors = []error{ErrInsufficientPrivilege, ErrNoAdminPrivileges, ErrSelfRoleChange, ErrInvalidToken, ErrExpiredToken}
)

// AuthError leva o código da API junto do erro base. UserID é zero quando a operação não tem
// um usuário alvo conhecido.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func matchesAny(err error, targets []error) bool {
	return slices.ContainsFunc(targets, func(target error) bool {
		return errors.Is(err, target)
	})
}

// IsCredentialsError indica falha de login que não deve revelar se o email existe
func IsCredentialsError(err error) bool {
	return matchesAny(err, credentialErrors)
}

func IsAuthorizationError(err error) bool {
	return matchesAny(err, authorizationErrors)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return NewUserAuthError(baseErr, code, 0, details)
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
