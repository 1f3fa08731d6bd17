package benchmarking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

func TestCalculateBusinessStats(t *testing.T) {
	tests := []struct {
		name              string
		campaigns         []*domain.Campaign
		expectedActive    int
		expectedAvgROI    float64
		expectedSpent     string
		expectedEarned    string
		expectedCampaigns int
	}{
		{
			name: "ativa não medida e concluída",
			campaigns: []*domain.Campaign{
				unmeasured("active", "BIZ", "SOCIAL", 300),
				measured("done", "BIZ", "SOCIAL", 200, 300),
			},
			expectedActive:    1,
			expectedAvgROI:    50.0,
			expectedSpent:     "500",
			expectedEarned:    "300",
			expectedCampaigns: 2,
		},
		{
			name:              "sem campanhas",
			campaigns:         []*domain.Campaign{},
			expectedSpent:     "0",
			expectedEarned:    "0",
			expectedCampaigns: 0,
		},
		{
			name: "receita com gasto zero não entra na média",
			campaigns: []*domain.Campaign{
				measured("free", "BIZ", "SOCIAL", 0, 100),
			},
			expectedAvgROI:    0,
			expectedSpent:     "0",
			expectedEarned:    "100",
			expectedCampaigns: 1,
		},
		{
			name: "média de várias campanhas medidas",
			campaigns: []*domain.Campaign{
				measured("c1", "BIZ", "SOCIAL", 100, 200), // 100
				measured("c2", "BIZ", "RADIO", 100, 50),   // -50
				measured("c3", "BIZ", "SOCIAL", 0, 10),    // fora da média
				unmeasured("c4", "BIZ", "SOCIAL", 25.5),
			},
			expectedActive:    1,
			expectedAvgROI:    25.0,
			expectedSpent:     "225.5",
			expectedEarned:    "260",
			expectedCampaigns: 4,
		},
		{
			name: "campanhas de outros negócios são ignoradas",
			campaigns: []*domain.Campaign{
				measured("mine", "BIZ", "SOCIAL", 100, 300),
				measured("other", "OTHER", "SOCIAL", 100, 1000),
				unmeasured("other-open", "OTHER", "SOCIAL", 999),
			},
			expectedAvgROI:    200.0,
			expectedSpent:     "100",
			expectedEarned:    "300",
			expectedCampaigns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := CalculateBusinessStats("BIZ", tt.campaigns)

			assert.Equal(t, tt.expectedActive, stats.ActiveCampaigns)
			assert.InDelta(t, tt.expectedAvgROI, stats.AverageROI, 1e-9)
			assert.True(t, decimal.RequireFromString(tt.expectedSpent).Equal(stats.TotalSpent), "total gasto: %s", stats.TotalSpent)
			assert.True(t, decimal.RequireFromString(tt.expectedEarned).Equal(stats.TotalEarned), "total recebido: %s", stats.TotalEarned)
			assert.Equal(t, tt.expectedCampaigns, stats.TotalCampaigns)
		})
	}
}

func TestCalculateBusinessStats_TotalSpentIncludesUnmeasured(t *testing.T) {
	campaigns := []*domain.Campaign{
		unmeasured("a", "BIZ", "SOCIAL", 10.10),
		unmeasured("b", "BIZ", "SOCIAL", 20.20),
		unmeasured("c", "BIZ", "SOCIAL", 30.30),
	}

	stats := CalculateBusinessStats("BIZ", campaigns)

	assert.Equal(t, "60.6", stats.TotalSpent.String())
	assert.True(t, stats.TotalEarned.IsZero())
	assert.Equal(t, 0.0, stats.AverageROI)
	assert.Equal(t, 3, stats.ActiveCampaigns)
}
