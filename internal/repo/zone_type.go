package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/repo/selector"
)

type ZoneType struct {
	db  *bun.DB
	sel selector.S[model.ZoneType]
}

func NewZoneType(db *bun.DB) *ZoneType {
	return &ZoneType{
		db:  db,
		sel: selector.New[model.ZoneType](db),
	}
}

func (r *ZoneType) GetZoneTypesByCityID(ctx context.Context, cityID string) ([]*model.ZoneType, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("city_id = ?", cityID).Order("id ASC")
	})
}

func (r *ZoneType) GetZoneTypeByID(ctx context.Context, id int) (*model.ZoneType, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

// ExistsZoneTypeName reports whether another zone type already carries the
// name. The uniqueness constraint on zone type names is global, not
// city-scoped; see schema. excludeID ignores the record being updated.
func (r *ZoneType) ExistsZoneTypeName(ctx context.Context, name string, excludeID int) (bool, error) {
	q := r.db.NewSelect().
		Model((*model.ZoneType)(nil)).
		Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	return q.Exists(ctx)
}

func (r *ZoneType) CreateZoneType(ctx context.Context, zoneType *model.ZoneType) error {
	_, err := r.db.NewInsert().
		Model(zoneType).
		Returning("id").
		Exec(ctx)
	return err
}

func (r *ZoneType) UpdateZoneType(ctx context.Context, zoneType *model.ZoneType) error {
	_, err := r.db.NewUpdate().
		Model(zoneType).
		Column("name", "description", "color", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *ZoneType) DeleteZoneType(ctx context.Context, id int) error {
	_, err := r.db.NewDelete().
		Model((*model.ZoneType)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
