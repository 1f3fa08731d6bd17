package benchmarking

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/vfg2006/roi-benchmark-api/infrastructure/repository"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
	"github.com/vfg2006/roi-benchmark-api/pkg/log"
	"github.com/vfg2006/roi-benchmark-api/pkg/metrics"
)

// Benchmarker expõe o motor de benchmark para a API, o agendador e os serviços consumidores
type Benchmarker interface {
	// RankByROI ordena as campanhas de um método de anúncio dentro de uma área
	RankByROI(ctx context.Context, query domain.AreaQuery) ([]*domain.RankedCampaign, error)

	// GetTopPerformers retorna as campanhas com melhor ROI entre as que já têm receita registrada
	GetTopPerformers(ctx context.Context) ([]*domain.RankedCampaign, error)

	// GetBusinessStats consolida as campanhas de um negócio
	GetBusinessStats(ctx context.Context, businessID string) (*domain.BusinessStats, error)

	// GetCompetitorContext compara um negócio com a concorrência da sua área
	GetCompetitorContext(ctx context.Context, query domain.CompetitorQuery) (*domain.CompetitorContext, error)

	// GetAllBusinessStats consolida as campanhas de todos os negócios
	GetAllBusinessStats(ctx context.Context) ([]*domain.BusinessReport, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	campaignRepo repository.CampaignRepository
	adMethodRepo repository.AdMethodRepository
	fetchTimeout time.Duration
}

func NewService(
	cfg *config.Config,
	businessRepo repository.BusinessRepository,
	campaignRepo repository.CampaignRepository,
	adMethodRepo repository.AdMethodRepository,
) Benchmarker {
	return &Service{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		adMethodRepo: adMethodRepo,
		fetchTimeout: cfg.Benchmark.FetchTimeout,
	}
}

// snapshot é a cópia local dos dados usada por uma única chamada
type snapshot struct {
	businesses []*domain.Business
	campaigns  []*domain.Campaign
	adMethods  map[string]*domain.AdMethod
}

func (s *Service) RankByROI(ctx context.Context, query domain.AreaQuery) ([]*domain.RankedCampaign, error) {
	const operation = "rank_by_roi"
	defer metrics.ObserveOperation(operation, time.Now())

	if query.Limit <= 0 {
		return []*domain.RankedCampaign{}, nil
	}

	snap, err := s.loadSnapshot(ctx, domain.CampaignFilter{AdMethodID: query.AdMethodID})
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, err
	}

	ranked := RankByROI(snap.businesses, snap.campaigns, snap.adMethods, query)
	metrics.AreaCohortSize.Observe(float64(cohortSize(ranked)))

	log.ForContext(ctx).WithFields(log.Fields{
		"business_type": query.BusinessType,
		"ad_method_id":  query.AdMethodID,
		"radius_miles":  query.RadiusMiles,
		"cohort_size":   cohortSize(ranked),
		"returned":      len(ranked),
	}).Debug("benchmark: ranking por área calculado")

	return ranked, nil
}

func (s *Service) GetTopPerformers(ctx context.Context) ([]*domain.RankedCampaign, error) {
	const operation = "top_performers"
	defer metrics.ObserveOperation(operation, time.Now())

	snap, err := s.loadSnapshot(ctx, domain.CampaignFilter{OnlyMeasured: true})
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, err
	}

	return TopPerformers(indexBusinesses(snap.businesses), snap.campaigns, snap.adMethods), nil
}

func (s *Service) GetBusinessStats(ctx context.Context, businessID string) (*domain.BusinessStats, error) {
	const operation = "business_stats"
	defer metrics.ObserveOperation(operation, time.Now())

	business, err := s.getBusiness(ctx, operation, businessID)
	if err != nil {
		return nil, err
	}

	return s.statsFor(ctx, operation, business.ID)
}

func (s *Service) GetCompetitorContext(ctx context.Context, query domain.CompetitorQuery) (*domain.CompetitorContext, error) {
	const operation = "competitor_context"
	defer metrics.ObserveOperation(operation, time.Now())

	business, err := s.getBusiness(ctx, operation, query.BusinessID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsFor(ctx, operation, business.ID)
	if err != nil {
		return nil, err
	}

	competitorContext := &domain.CompetitorContext{
		Business: business,
		Stats:    stats,
		Ranking:  []*domain.RankedCampaign{},
	}

	center, ok := business.Location()
	if !ok {
		log.ForContext(ctx).WithField("business_id", business.ID).Info("benchmark: negócio sem coordenadas, concorrência vazia")
		return competitorContext, nil
	}

	snap, err := s.loadSnapshot(ctx, domain.CampaignFilter{AdMethodID: query.AdMethodID})
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, err
	}

	// ranking completo primeiro para achar a melhor posição mesmo fora do limite
	ranked := RankByROI(snap.businesses, snap.campaigns, snap.adMethods, domain.AreaQuery{
		BusinessType: business.BusinessType,
		AdMethodID:   query.AdMethodID,
		Center:       center,
		RadiusMiles:  query.RadiusMiles,
		Limit:        math.MaxInt,
	})

	competitorContext.TotalInArea = cohortSize(ranked)
	for _, item := range ranked {
		if item.BusinessID == business.ID {
			competitorContext.BestRank = item.AreaRank
			break
		}
	}

	limit := max(query.Limit, 0)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	competitorContext.Ranking = ranked

	return competitorContext, nil
}

func (s *Service) getBusiness(ctx context.Context, operation string, businessID string) (*domain.Business, error) {
	if businessID == "" {
		return nil, NewBenchmarkError(ErrBusinessIDRequired, CodeInvalidQuery, "")
	}

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	business, err := s.businessRepo.GetBusinessByID(ctx, businessID)
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, newFetchError(err, "business")
	}
	if business == nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "not_found").Inc()
		return nil, newBusinessNotFoundError(businessID)
	}

	return business, nil
}

func (s *Service) statsFor(ctx context.Context, operation string, businessID string) (*domain.BusinessStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, domain.CampaignFilter{BusinessID: businessID})
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, newFetchError(err, "campaigns")
	}

	return CalculateBusinessStats(businessID, campaigns), nil
}

func (s *Service) GetAllBusinessStats(ctx context.Context) ([]*domain.BusinessReport, error) {
	const operation = "all_business_stats"
	defer metrics.ObserveOperation(operation, time.Now())

	snap, err := s.loadSnapshot(ctx, domain.CampaignFilter{})
	if err != nil {
		metrics.BenchmarkOperationErrors.WithLabelValues(operation, "fetch").Inc()
		return nil, err
	}

	campaignsByBusiness := make(map[string][]*domain.Campaign, len(snap.businesses))
	for _, campaign := range snap.campaigns {
		if campaign == nil {
			continue
		}
		campaignsByBusiness[campaign.BusinessID] = append(campaignsByBusiness[campaign.BusinessID], campaign)
	}

	reports := make([]*domain.BusinessReport, 0, len(snap.businesses))
	for _, business := range snap.businesses {
		if business == nil {
			continue
		}
		reports = append(reports, &domain.BusinessReport{
			Business: business,
			Stats:    CalculateBusinessStats(business.ID, campaignsByBusiness[business.ID]),
		})
	}

	return reports, nil
}

// loadSnapshot busca negócios, campanhas e métodos de anúncio em paralelo, limitado por fetchTimeout
func (s *Service) loadSnapshot(ctx context.Context, filter domain.CampaignFilter) (*snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	var (
		wg          sync.WaitGroup
		snap        = &snapshot{}
		adMethods   []*domain.AdMethod
		businessErr error
		campaignErr error
		adMethodErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		snap.businesses, businessErr = s.businessRepo.ListBusinesses(ctx)
	}()

	go func() {
		defer wg.Done()
		snap.campaigns, campaignErr = s.campaignRepo.ListCampaigns(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		adMethods, adMethodErr = s.adMethodRepo.ListAdMethods(ctx)
	}()

	wg.Wait()

	if businessErr != nil {
		return nil, newFetchError(businessErr, "businesses")
	}
	if campaignErr != nil {
		return nil, newFetchError(campaignErr, "campaigns")
	}
	if adMethodErr != nil {
		return nil, newFetchError(adMethodErr, "ad methods")
	}

	snap.adMethods = indexAdMethods(adMethods)

	return snap, nil
}

func cohortSize(ranked []*domain.RankedCampaign) int {
	if len(ranked) == 0 {
		return 0
	}
	return ranked[0].TotalInArea
}
