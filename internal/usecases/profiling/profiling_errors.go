package profiling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de perfis
var (
	// Erros de validação
	ErrMissingSessions  = errors.New("at least one session id is required")
	ErrInvalidParameter = errors.New("invalid query parameter")

	// Erros de banco de dados
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// ProfilingError é um erro com contexto adicional para as consultas de perfil
type ProfilingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProfilingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProfilingError) Unwrap() error {
	return e.Err
}

// NewProfilingError cria um novo ProfilingError
func NewProfilingError(err error, code string, details string) *ProfilingError {
	return &ProfilingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
