package reporting

import "errors"

var (
	ErrBusNotFound       = errors.New("ônibus não encontrado")
	ErrInvalidMonth      = errors.New("mês inválido, use o formato YYYY-MM")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
