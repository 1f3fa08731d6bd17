package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/roi-benchmark-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// ListCampaigns busca campanhas sempre em ordem de criação (e id como desempate),
// garantindo que empates de ROI tenham a mesma ordem em toda execução.
func (r *campaignRepository) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	query, args, err := buildListCampaignsQuery(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de campanhas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de campanhas")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear campanha")
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de campanhas")
	}

	return campaigns, nil
}

func buildListCampaignsQuery(filter domain.CampaignFilter) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"c.business_id",
			"c.ad_method_id",
			"c.amount_spent",
			"c.amount_earned",
			"c.start_date",
			"c.end_date",
			"c.is_active",
			"c.created_at",
		).
		From(campaignsTable).
		OrderBy("c.created_at ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.BusinessID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.business_id": filter.BusinessID})
	}

	if filter.AdMethodID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.ad_method_id": filter.AdMethodID})
	}

	if filter.OnlyMeasured {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"c.amount_earned": nil})
	}

	return queryBuilder.ToSql()
}

func (r *campaignRepository) scanCampaign(row scanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var endDate sql.NullTime
	err := row.Scan(
		&campaign.ID,
		&campaign.BusinessID,
		&campaign.AdMethodID,
		&campaign.AmountSpent,
		&campaign.AmountEarned,
		&campaign.StartDate,
		&endDate,
		&campaign.IsActive,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	return campaign, nil
}
