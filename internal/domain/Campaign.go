package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Campaign struct {
	ID           string              `json:"id"`
	BusinessID   string              `json:"business_id"`
	AdMethodID   string              `json:"ad_method_id"`
	AmountSpent  decimal.Decimal     `json:"amount_spent"`
	AmountEarned decimal.NullDecimal `json:"amount_earned"` // inválido = ainda não medido
	StartDate    time.Time           `json:"start_date"`
	EndDate      *time.Time          `json:"end_date"` // nil = em andamento
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ROI recalcula o retorno sobre investimento a partir dos valores atuais da campanha
func (c *Campaign) ROI() float64 {
	return CalculateROI(decimal.NewNullDecimal(c.AmountSpent), c.AmountEarned)
}

// HasEarnings indica se a campanha já tem receita registrada
func (c *Campaign) HasEarnings() bool {
	return c.AmountEarned.Valid
}

// CampaignFilter restringe a busca de campanhas no repositório. Campos vazios não filtram.
type CampaignFilter struct {
	BusinessID   string
	AdMethodID   string
	OnlyMeasured bool
}
