package insighting

import "errors"

var (
	ErrInvalidPeriod     = errors.New("a data de início não pode ser posterior à data de fim")
	ErrUnknownCollection = errors.New("coleção desconhecida")
)
