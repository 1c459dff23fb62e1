package fleet

import (
	"errors"
	"fmt"
)

var (
	ErrBusNotFound       = errors.New("ônibus não encontrado")
	ErrBusAlreadyExists  = errors.New("já existe um ônibus com este número")
	ErrInvalidOrigin     = errors.New("origem inválida, use la_esperanza ou tulcan")
	ErrInvalidCapacity   = errors.New("a capacidade deve ser maior que zero")
	ErrDriverNotFound    = errors.New("motorista não encontrado")
	ErrMissingBusNumber  = errors.New("o número do ônibus é obrigatório")
	ErrMissingDriverName = errors.New("o nome do motorista é obrigatório")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// FleetError é um erro com contexto adicional para ônibus e motoristas
type FleetError struct {
	Err        error
	Code       string
	ResourceID string
	Details    string
}

func (e *FleetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FleetError) Unwrap() error {
	return e.Err
}

func NewFleetError(err error, code string, details string) *FleetError {
	return &FleetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewFleetErrorWithID(err error, code string, resourceID string, details string) *FleetError {
	return &FleetError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
