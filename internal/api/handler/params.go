package handler

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
)

// paramError descreve um parâmetro de consulta inválido
type paramError struct {
	Code    string
	Param   string
	Message string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

func requiredString(query url.Values, name string) (string, *paramError) {
	value := strings.TrimSpace(query.Get(name))
	if value == "" {
		return "", &paramError{Code: apiErrors.ErrMissingRequiredData, Param: name, Message: "parâmetro obrigatório"}
	}
	return value, nil
}

func parseFloat(query url.Values, name string) (value float64, present bool, perr *paramError) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return 0, false, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, &paramError{Code: apiErrors.ErrInvalidFormat, Param: name, Message: "deve ser um número finito"}
	}

	return value, true, nil
}

func parseCoordinate(query url.Values, name string, limit float64) (float64, *paramError) {
	value, present, perr := parseFloat(query, name)
	if perr != nil {
		return 0, perr
	}
	if !present {
		return 0, &paramError{Code: apiErrors.ErrMissingRequiredData, Param: name, Message: "parâmetro obrigatório"}
	}
	if value < -limit || value > limit {
		return 0, &paramError{Code: apiErrors.ErrOutOfRange, Param: name, Message: fmt.Sprintf("deve estar entre -%v e %v", limit, limit)}
	}
	return value, nil
}

// parseRadius usa o raio padrão da configuração quando ausente
func parseRadius(query url.Values, cfg config.Benchmark) (float64, *paramError) {
	value, present, perr := parseFloat(query, "radius")
	if perr != nil {
		return 0, perr
	}
	if !present {
		return cfg.DefaultRadiusMiles, nil
	}
	if value < 0 {
		return 0, &paramError{Code: apiErrors.ErrOutOfRange, Param: "radius", Message: "deve ser maior ou igual a zero"}
	}
	return value, nil
}

// parseLimit usa o limite padrão quando ausente e nunca passa do máximo configurado.
// Zero é aceito e resulta em lista vazia.
func parseLimit(query url.Values, cfg config.Benchmark) (int, *paramError) {
	raw := strings.TrimSpace(query.Get("limit"))
	if raw == "" {
		return cfg.DefaultLimit, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{Code: apiErrors.ErrInvalidFormat, Param: "limit", Message: "deve ser um número inteiro"}
	}
	if value < 0 {
		return 0, &paramError{Code: apiErrors.ErrOutOfRange, Param: "limit", Message: "deve ser maior ou igual a zero"}
	}

	return min(value, cfg.MaxLimit), nil
}
