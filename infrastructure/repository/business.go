// Package repository contém as implementações dos repositórios para acesso aos dados
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
	businessesTable = "businesses b"
)

var businessColumns = []string{
	"b.id",
	"b.name",
	"b.business_type",
	"b.address",
	"b.latitude",
	"b.longitude",
	"b.created_at",
}

type BusinessRepository interface {
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	ListBusinesses(ctx context.Context) ([]*domain.Business, error)
}

type businessRepository struct {
	conn postgres.Queryer
}

func NewBusinessRepository(conn postgres.Queryer) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns...).
		From(businessesTable).
		Where(squirrel.Eq{"b.id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de negócio")
	}

	business, err := r.scanBusiness(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar negócio %s", businessID)
	}

	return business, nil
}

// ListBusinesses retorna todos os negócios na ordem de cadastro
func (r *businessRepository) ListBusinesses(ctx context.Context) ([]*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns...).
		From(businessesTable).
		OrderBy("b.created_at ASC", "b.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de negócios")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de negócios")
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business, err := r.scanBusiness(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear negócio")
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de negócios")
	}

	return businesses, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *businessRepository) scanBusiness(row scanner) (*domain.Business, error) {
	business := &domain.Business{}

	var latitude, longitude sql.NullFloat64
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.BusinessType,
		&business.Address,
		&latitude,
		&longitude,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if latitude.Valid {
		business.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		business.Longitude = &longitude.Float64
	}

	return business, nil
}
