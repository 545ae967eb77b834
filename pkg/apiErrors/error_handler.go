package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidRange   = "VAL_002" // Período inválido
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de recurso
	ErrNotFound = "RES_001" // Recurso não encontrado
	ErrConflict = "RES_002" // Operação já em andamento

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrInvalidRange:    http.StatusBadRequest,
	ErrInvalidFormat:   http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrConflict:        http.StatusConflict,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusBadGateway,
}

// APIError é o corpo de erro das respostas: {"error": "..."}
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP do código, ou 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError converte um erro Go no código de API correspondente
func FromError(err error) (string, string) {
	if err == nil {
		return ErrInternalServer, "Erro desconhecido"
	}

	if errors.Is(err, domain.ErrInvalidRange) {
		return ErrInvalidRange, err.Error()
	}

	return ErrInternalServer, err.Error()
}

// WriteFromError escreve a resposta de erro a partir de um erro Go
func WriteFromError(w http.ResponseWriter, err error) {
	code, message := FromError(err)
	WriteError(w, code, message, nil)
}
