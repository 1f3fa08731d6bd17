package benchmarking

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

// CalculateBusinessStats consolida as campanhas de um negócio.
//
// Cada métrica usa um recorte diferente das campanhas:
//   - ActiveCampaigns conta apenas campanhas com IsActive;
//   - TotalSpent soma o gasto de todas as campanhas, medidas ou não;
//   - TotalEarned soma a receita das campanhas com receita registrada;
//   - AverageROI considera só campanhas com receita registrada e gasto positivo.
func CalculateBusinessStats(businessID string, campaigns []*domain.Campaign) *domain.BusinessStats {
	stats := &domain.BusinessStats{
		TotalSpent:  decimal.Zero,
		TotalEarned: decimal.Zero,
	}

	roiSum := 0.0
	completed := 0

	for _, campaign := range campaigns {
		if campaign == nil || campaign.BusinessID != businessID {
			continue
		}

		stats.TotalCampaigns++
		stats.TotalSpent = stats.TotalSpent.Add(campaign.AmountSpent)

		if campaign.IsActive {
			stats.ActiveCampaigns++
		}

		if !campaign.HasEarnings() {
			continue
		}

		stats.TotalEarned = stats.TotalEarned.Add(campaign.AmountEarned.Decimal)

		if campaign.AmountSpent.IsPositive() {
			roiSum += campaign.ROI()
			completed++
		}
	}

	if completed > 0 {
		stats.AverageROI = roiSum / float64(completed)
	}

	return stats
}
