package sqlite

import (
	"context"

	"event-management-api/internal/model"
)

func (s *Store) CreateVendor(ctx context.Context, v *model.Vendor) error {
	row := &vendorRow{Name: v.Name, Contact: v.Contact, Notes: v.Notes}
	if _, err := s.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return mapErr(err)
	}
	v.ID = row.ID
	return nil
}

func (s *Store) VendorByID(ctx context.Context, id int64) (*model.Vendor, error) {
	row := new(vendorRow)
	if err := s.db.NewSelect().Model(row).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	v := row.toModel()
	return &v, nil
}

func (s *Store) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	var rows []vendorRow
	if err := s.db.NewSelect().Model(&rows).Order("id").Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	out := make([]model.Vendor, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out, nil
}
