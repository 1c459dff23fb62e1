// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

// ErrNotFound é retornado pelas buscas por ID quando o registro não existe
var ErrNotFound = errors.New("registro não encontrado")

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type scanner interface {
	Scan(dest ...any) error
}
