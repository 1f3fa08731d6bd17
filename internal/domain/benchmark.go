// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-benchmark-api/pkg/geo"
)

// RankedCampaign é uma campanha com ROI calculado na hora. Nunca é persistida.
type RankedCampaign struct {
	Campaign
	ROI         float64   `json:"roi"`
	Business    *Business `json:"business,omitempty"`
	AdMethod    *AdMethod `json:"ad_method,omitempty"`
	AreaRank    int       `json:"area_rank,omitempty"`     // posição 1-based dentro da área
	TotalInArea int       `json:"total_in_area,omitempty"` // tamanho da coorte antes do corte por limite
}

type BusinessStats struct {
	ActiveCampaigns int             `json:"active_campaigns"`
	AverageROI      float64         `json:"average_roi"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalCampaigns  int             `json:"total_campaigns"`
}

// AreaQuery descreve uma busca de campanhas concorrentes por tipo de negócio, método e raio
type AreaQuery struct {
	BusinessType string
	AdMethodID   string
	Center       geo.Point
	RadiusMiles  float64
	Limit        int
}

// CompetitorQuery descreve a busca da concorrência de um negócio específico
type CompetitorQuery struct {
	BusinessID  string
	AdMethodID  string
	RadiusMiles float64
	Limit       int
}

// CompetitorContext alimenta o motor de recomendação de preço com o desempenho da concorrência
type CompetitorContext struct {
	Business    *Business         `json:"business"`
	Stats       *BusinessStats    `json:"stats"`
	BestRank    int               `json:"best_rank"` // 0 quando nenhuma campanha do negócio está na área
	TotalInArea int               `json:"total_in_area"`
	Ranking     []*RankedCampaign `json:"ranking"`
}

// BusinessReport agrupa as estatísticas de um negócio para o relatório semanal
type BusinessReport struct {
	Business *Business      `json:"business"`
	Stats    *BusinessStats `json:"stats"`
}
