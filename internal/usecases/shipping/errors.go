package shipping

import "errors"

var (
	ErrParcelNotFound    = errors.New("encomenda não encontrada")
	ErrInvalidStatus     = errors.New("estado inválido, use pendiente, en_transito ou entregado")
	ErrMissingNumber     = errors.New("o número do ônibus da encomenda é obrigatório")
	ErrNegativePrice     = errors.New("o preço não pode ser negativo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
