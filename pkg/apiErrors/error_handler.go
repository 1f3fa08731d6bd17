package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrOutOfRange          = "VAL_004" // Valor fora do intervalo permitido
	ErrResourceNotFound    = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não suportado pela rota

	// Erros do motor de benchmark (3000-3999)
	ErrBusinessNotFound = "BNC_001" // Negócio não encontrado
	ErrBenchmarkData    = "BNC_002" // Falha ao buscar dados do benchmark
	ErrInvalidQuery     = "BNC_003" // Consulta de benchmark inválida

	// Erros de agendamento (4000-4999)
	ErrJobAlreadyRunning = "JOB_001" // Execução já em andamento

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrServiceNotReady = "SRV_003" // Serviço não disponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrOutOfRange:          http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrBusinessNotFound:    http.StatusNotFound,
	ErrBenchmarkData:       http.StatusServiceUnavailable,
	ErrInvalidQuery:        http.StatusBadRequest,
	ErrJobAlreadyRunning:   http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrServiceNotReady:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
