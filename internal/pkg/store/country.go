package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var countryColumns = []string{"id", "name", "code", "region", "created_at", "updated_at"}

func (s *store) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	query := builder().Insert(tableCountries).
		Columns("name", "code", "region").
		Values(country.Name, country.Code, country.Region).
		Suffix("RETURNING " + joinColumns(countryColumns))

	var created domain.Country
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) GetCountryByID(ctx context.Context, id int64) (*domain.Country, error) {
	query := builder().Select(countryColumns...).
		From(tableCountries).
		Where(sq.Eq{"id": id})

	var selected domain.Country
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	query := builder().Select(countryColumns...).
		From(tableCountries).
		Where(sq.Eq{"name": name})

	var selected domain.Country
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	query := builder().Select(countryColumns...).
		From(tableCountries).
		OrderBy("name")

	var selected []*domain.Country
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
