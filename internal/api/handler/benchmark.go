package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
	"github.com/vfg2006/roi-benchmark-api/internal/usecases/benchmarking"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
	"github.com/vfg2006/roi-benchmark-api/pkg/geo"
	"github.com/vfg2006/roi-benchmark-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AreaRankingResponse struct {
	BusinessType string                   `json:"business_type"`
	AdMethodID   string                   `json:"ad_method_id"`
	Latitude     float64                  `json:"latitude"`
	Longitude    float64                  `json:"longitude"`
	RadiusMiles  float64                  `json:"radius_miles"`
	Limit        int                      `json:"limit"`
	TotalInArea  int                      `json:"total_in_area"`
	Ranking      []*domain.RankedCampaign `json:"ranking"`
}

type TopPerformersResponse struct {
	Campaigns []*domain.RankedCampaign `json:"campaigns"`
}

// GetAreaRanking retorna o ranking de ROI das campanhas de um método de anúncio em uma área
func GetAreaRanking(service benchmarking.Benchmarker, cfg config.Benchmark) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		businessType, perr := requiredString(query, "business_type")
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		adMethodID, perr := requiredString(query, "ad_method_id")
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		lat, perr := parseCoordinate(query, "lat", 90)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		lon, perr := parseCoordinate(query, "lon", 180)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		radius, perr := parseRadius(query, cfg)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		limit, perr := parseLimit(query, cfg)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		ranked, err := service.RankByROI(r.Context(), domain.AreaQuery{
			BusinessType: businessType,
			AdMethodID:   adMethodID,
			Center:       geo.Point{Lat: lat, Lon: lon},
			RadiusMiles:  radius,
			Limit:        limit,
		})
		if err != nil {
			writeBenchmarkError(w, r, "GetAreaRanking", err)
			return
		}

		totalInArea := 0
		if len(ranked) > 0 {
			totalInArea = ranked[0].TotalInArea
		}

		writeJSON(w, r, http.StatusOK, AreaRankingResponse{
			BusinessType: businessType,
			AdMethodID:   adMethodID,
			Latitude:     lat,
			Longitude:    lon,
			RadiusMiles:  radius,
			Limit:        limit,
			TotalInArea:  totalInArea,
			Ranking:      ranked,
		})
	}
}

// GetTopPerformers retorna as campanhas com melhor ROI entre as que já têm receita
func GetTopPerformers(service benchmarking.Benchmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, err := service.GetTopPerformers(r.Context())
		if err != nil {
			writeBenchmarkError(w, r, "GetTopPerformers", err)
			return
		}

		writeJSON(w, r, http.StatusOK, TopPerformersResponse{Campaigns: ranked})
	}
}

func GetBusinessStats(service benchmarking.Benchmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não informado", nil)
			return
		}

		stats, err := service.GetBusinessStats(r.Context(), businessID)
		if err != nil {
			writeBenchmarkError(w, r, "GetBusinessStats", err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

// GetCompetitors compara um negócio com as campanhas concorrentes da sua área
func GetCompetitors(service benchmarking.Benchmarker, cfg config.Benchmark) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não informado", nil)
			return
		}

		query := r.URL.Query()

		adMethodID, perr := requiredString(query, "ad_method_id")
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		radius, perr := parseRadius(query, cfg)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		limit, perr := parseLimit(query, cfg)
		if perr != nil {
			writeParamError(w, perr)
			return
		}

		competitorContext, err := service.GetCompetitorContext(r.Context(), domain.CompetitorQuery{
			BusinessID:  businessID,
			AdMethodID:  adMethodID,
			RadiusMiles: radius,
			Limit:       limit,
		})
		if err != nil {
			writeBenchmarkError(w, r, "GetCompetitors", err)
			return
		}

		writeJSON(w, r, http.StatusOK, competitorContext)
	}
}

func writeParamError(w http.ResponseWriter, perr *paramError) {
	apiErrors.WriteError(w, perr.Code, perr.Message, map[string]string{"param": perr.Param})
}

// writeBenchmarkError traduz os erros do motor de benchmark para a resposta HTTP
func writeBenchmarkError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var benchmarkErr *benchmarking.BenchmarkError
	if !errors.As(err, &benchmarkErr) {
		logger.Errorf("%s: erro inesperado", handlerName)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	switch {
	case errors.Is(err, benchmarking.ErrBusinessNotFound):
		logger.Warnf("%s: negócio não encontrado", handlerName)
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", map[string]string{"business_id": benchmarkErr.BusinessID})
	case errors.Is(err, benchmarking.ErrDataFetch):
		logger.Errorf("%s: falha ao buscar dados", handlerName)
		apiErrors.WriteError(w, apiErrors.ErrBenchmarkData, "Não foi possível carregar os dados do benchmark", nil)
	default:
		apiErr := apiErrors.FromError(benchmarkErr.Err, benchmarkErr.Code)
		logger.Warnf("%s: consulta inválida", handlerName)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao serializar resposta")
	}
}
