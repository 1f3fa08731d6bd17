package benchmarking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func newBusiness(id, businessType string, lat, lon float64) *domain.Business {
	return &domain.Business{
		ID:           id,
		Name:         "Negócio " + id,
		BusinessType: businessType,
		Latitude:     float64Ptr(lat),
		Longitude:    float64Ptr(lon),
	}
}

func measured(id, businessID, adMethodID string, spent, earned float64) *domain.Campaign {
	return &domain.Campaign{
		ID:           id,
		BusinessID:   businessID,
		AdMethodID:   adMethodID,
		AmountSpent:  decimal.NewFromFloat(spent),
		AmountEarned: decimal.NewNullDecimal(decimal.NewFromFloat(earned)),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func unmeasured(id, businessID, adMethodID string, spent float64) *domain.Campaign {
	return &domain.Campaign{
		ID:          id,
		BusinessID:  businessID,
		AdMethodID:  adMethodID,
		AmountSpent: decimal.NewFromFloat(spent),
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
}

func businessIDs(businesses []*domain.Business) []string {
	ids := make([]string, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	return ids
}

func campaignIDs(ranked []*domain.RankedCampaign) []string {
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}
	return ids
}
