// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// wrapQueryError anexa contexto ao erro do driver preservando a causa original
func wrapQueryError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(err, "%s (código: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}
