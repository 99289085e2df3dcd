package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/repo/selector"
)

type Region struct {
	db  *bun.DB
	sel selector.S[model.Region]
}

func NewRegion(db *bun.DB) *Region {
	return &Region{
		db:  db,
		sel: selector.New[model.Region](db),
	}
}

func (r *Region) GetRegionsByCityID(ctx context.Context, cityID string) ([]*model.Region, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("city_id = ?", cityID).Order("id ASC")
	})
}

func (r *Region) GetRegionByID(ctx context.Context, id int) (*model.Region, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Region) CreateRegion(ctx context.Context, region *model.Region) error {
	_, err := r.db.NewInsert().
		Model(region).
		Returning("id").
		Exec(ctx)
	return err
}

func (r *Region) UpdateRegion(ctx context.Context, region *model.Region) error {
	_, err := r.db.NewUpdate().
		Model(region).
		Column("name", "latitude", "longitude", "zoom_level", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *Region) DeleteRegion(ctx context.Context, id int) error {
	_, err := r.db.NewDelete().
		Model((*model.Region)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
