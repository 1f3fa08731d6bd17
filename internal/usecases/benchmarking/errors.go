package benchmarking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de benchmark
var (
	ErrBusinessIDRequired = errors.New("business ID is required")
	ErrBusinessNotFound   = errors.New("business not found")

	// Falha ao buscar dados no repositório. Nunca é mascarada como resultado vazio.
	ErrDataFetch = errors.New("error fetching benchmark data")
)

// Códigos de erro para a API
const (
	CodeBusinessNotFound = "BNC_001"
	CodeDataFetch        = "BNC_002"
	CodeInvalidQuery     = "BNC_003"
)

// BenchmarkError é um erro com contexto adicional para operações de benchmark
type BenchmarkError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	BusinessID string // ID do negócio envolvido (quando aplicável)
	Details    string // Detalhes adicionais
	cause      error
}

// Error implementa a interface error
func (e *BenchmarkError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.cause.Error())
	}
	return msg
}

// Unwrap permite errors.Is tanto no erro base quanto na causa original
func (e *BenchmarkError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

// NewBenchmarkError cria um novo BenchmarkError
func NewBenchmarkError(err error, code string, details string) *BenchmarkError {
	return &BenchmarkError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// newFetchError embrulha uma falha do repositório como ErrDataFetch
func newFetchError(cause error, details string) *BenchmarkError {
	return &BenchmarkError{
		Err:     ErrDataFetch,
		Code:    CodeDataFetch,
		Details: details,
		cause:   cause,
	}
}

func newBusinessNotFoundError(businessID string) *BenchmarkError {
	return &BenchmarkError{
		Err:        ErrBusinessNotFound,
		Code:       CodeBusinessNotFound,
		BusinessID: businessID,
		Details:    businessID,
	}
}
