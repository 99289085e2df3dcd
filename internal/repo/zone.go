package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/repo/selector"
)

type Zone struct {
	db  *bun.DB
	sel selector.S[model.Zone]
}

func NewZone(db *bun.DB) *Zone {
	return &Zone{
		db:  db,
		sel: selector.New[model.Zone](db),
	}
}

func (r *Zone) GetZonesByCityID(ctx context.Context, cityID string) ([]*model.Zone, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("city_id = ?", cityID).Order("id ASC")
	})
}

func (r *Zone) GetZoneByID(ctx context.Context, id int) (*model.Zone, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Zone) CreateZone(ctx context.Context, zone *model.Zone) error {
	_, err := r.db.NewInsert().
		Model(zone).
		Returning("id").
		Exec(ctx)
	return err
}

// UpdateZone persists only the given columns of a patched record.
func (r *Zone) UpdateZone(ctx context.Context, zone *model.Zone, columns []string) error {
	_, err := r.db.NewUpdate().
		Model(zone).
		Column(append(columns, "updated_at")...).
		WherePK().
		Exec(ctx)
	return err
}

func (r *Zone) DeleteZone(ctx context.Context, id int) error {
	_, err := r.db.NewDelete().
		Model((*model.Zone)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *Zone) DeleteZonesByCityID(ctx context.Context, cityID string) error {
	_, err := r.db.NewDelete().
		Model((*model.Zone)(nil)).
		Where("city_id = ?", cityID).
		Exec(ctx)
	return err
}

// CountZonesByTypeID queries persistence directly: the zone type delete
// guard must never be answered from a possibly stale cache.
func (r *Zone) CountZonesByTypeID(ctx context.Context, typeID int) (int, error) {
	return r.db.NewSelect().
		Model((*model.Zone)(nil)).
		Where("type_id = ?", typeID).
		Count(ctx)
}
