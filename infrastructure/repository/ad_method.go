package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/roi-benchmark-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
)

const (
	adMethodsTable = "ad_methods am"
)

type AdMethodRepository interface {
	ListAdMethods(ctx context.Context) ([]*domain.AdMethod, error)
}

type adMethodRepository struct {
	conn postgres.Queryer
}

func NewAdMethodRepository(conn postgres.Queryer) AdMethodRepository {
	return &adMethodRepository{
		conn: conn,
	}
}

func (r *adMethodRepository) ListAdMethods(ctx context.Context) ([]*domain.AdMethod, error) {
	query, args, err := squirrel.
		Select("am.id", "am.name").
		From(adMethodsTable).
		OrderBy("am.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de métodos de anúncio")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de métodos de anúncio")
	}
	defer rows.Close()

	adMethods := make([]*domain.AdMethod, 0)
	for rows.Next() {
		adMethod := &domain.AdMethod{}
		if err := rows.Scan(&adMethod.ID, &adMethod.Name); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear método de anúncio")
		}
		adMethods = append(adMethods, adMethod)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de métodos de anúncio")
	}

	return adMethods, nil
}
