package benchmarking

import (
	"sort"

	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

// TopPerformersLimit é o tamanho fixo da lista global de melhores campanhas
const TopPerformersLimit = 10

// RankByROI ordena as campanhas do método de anúncio dentro da área por ROI decrescente.
// Campanhas sem receita medida entram com ROI 0. Empates mantêm a ordem em que as
// campanhas vieram do repositório. AreaRank e TotalInArea são atribuídos antes do corte por limite.
func RankByROI(
	businesses []*domain.Business,
	campaigns []*domain.Campaign,
	adMethods map[string]*domain.AdMethod,
	query domain.AreaQuery,
) []*domain.RankedCampaign {
	if query.Limit <= 0 {
		return []*domain.RankedCampaign{}
	}

	candidates := FindInRadius(businesses, query.BusinessType, query.Center, query.RadiusMiles)
	if len(candidates) == 0 {
		return []*domain.RankedCampaign{}
	}

	candidatesByID := indexBusinesses(candidates)

	ranked := make([]*domain.RankedCampaign, 0)
	for _, campaign := range campaigns {
		if campaign == nil || campaign.AdMethodID != query.AdMethodID {
			continue
		}

		business, ok := candidatesByID[campaign.BusinessID]
		if !ok {
			continue
		}

		ranked = append(ranked, newRankedCampaign(campaign, business, adMethods[campaign.AdMethodID]))
	}

	sortByROI(ranked)

	for i, item := range ranked {
		item.AreaRank = i + 1
		item.TotalInArea = len(ranked)
	}

	if len(ranked) > query.Limit {
		ranked = ranked[:query.Limit]
	}

	return ranked
}

// TopPerformers retorna as campanhas com melhor ROI entre todas as campanhas com receita registrada.
// Diferente de RankByROI, campanhas sem receita ficam de fora em vez de pontuar 0.
func TopPerformers(
	businessesByID map[string]*domain.Business,
	campaigns []*domain.Campaign,
	adMethods map[string]*domain.AdMethod,
) []*domain.RankedCampaign {
	ranked := make([]*domain.RankedCampaign, 0)
	for _, campaign := range campaigns {
		if campaign == nil || !campaign.HasEarnings() {
			continue
		}

		ranked = append(ranked, newRankedCampaign(campaign, businessesByID[campaign.BusinessID], adMethods[campaign.AdMethodID]))
	}

	sortByROI(ranked)

	if len(ranked) > TopPerformersLimit {
		ranked = ranked[:TopPerformersLimit]
	}

	return ranked
}

func newRankedCampaign(campaign *domain.Campaign, business *domain.Business, adMethod *domain.AdMethod) *domain.RankedCampaign {
	return &domain.RankedCampaign{
		Campaign: *campaign,
		ROI:      campaign.ROI(),
		Business: business,
		AdMethod: adMethod,
	}
}

// sortByROI precisa ser estável: empates preservam a ordem de busca e o resultado é reproduzível
func sortByROI(ranked []*domain.RankedCampaign) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ROI > ranked[j].ROI
	})
}

func indexBusinesses(businesses []*domain.Business) map[string]*domain.Business {
	byID := make(map[string]*domain.Business, len(businesses))
	for _, business := range businesses {
		if business == nil {
			continue
		}
		byID[business.ID] = business
	}
	return byID
}

func indexAdMethods(adMethods []*domain.AdMethod) map[string]*domain.AdMethod {
	byID := make(map[string]*domain.AdMethod, len(adMethods))
	for _, adMethod := range adMethods {
		if adMethod == nil {
			continue
		}
		byID[adMethod.ID] = adMethod
	}
	return byID
}
