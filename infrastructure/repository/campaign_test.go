package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

func TestBuildListCampaignsQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       domain.CampaignFilter
		contains     []string
		notContains  []string
		expectedArgs []interface{}
	}{
		{
			name:         "sem filtros",
			filter:       domain.CampaignFilter{},
			contains:     []string{"FROM campaigns c", "ORDER BY c.created_at ASC, c.id ASC"},
			notContains:  []string{"WHERE"},
			expectedArgs: nil,
		},
		{
			name:         "por negócio",
			filter:       domain.CampaignFilter{BusinessID: "BIZ001"},
			contains:     []string{"WHERE c.business_id = $1"},
			notContains:  []string{"ad_method_id =", "IS NOT NULL"},
			expectedArgs: []interface{}{"BIZ001"},
		},
		{
			name:         "por método de anúncio apenas medidas",
			filter:       domain.CampaignFilter{AdMethodID: "SOCIAL", OnlyMeasured: true},
			contains:     []string{"c.ad_method_id = $1", "c.amount_earned IS NOT NULL"},
			notContains:  []string{"business_id ="},
			expectedArgs: []interface{}{"SOCIAL"},
		},
		{
			name:         "todos os filtros",
			filter:       domain.CampaignFilter{BusinessID: "BIZ001", AdMethodID: "SOCIAL", OnlyMeasured: true},
			contains:     []string{"c.business_id = $1", "c.ad_method_id = $2", "c.amount_earned IS NOT NULL"},
			expectedArgs: []interface{}{"BIZ001", "SOCIAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCampaignsQuery(tt.filter)
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.notContains {
				assert.NotContains(t, query, fragment)
			}
			if tt.expectedArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
