package postgres

import (
	"context"

	"event-management-api/internal/model"
)

func (s *Store) CreateVendor(ctx context.Context, v *model.Vendor) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO vendors (name, contact, notes) VALUES ($1,$2,$3) RETURNING id`,
		v.Name, v.Contact, v.Notes,
	).Scan(&v.ID)
	return mapErr(err)
}

func (s *Store) VendorByID(ctx context.Context, id int64) (*model.Vendor, error) {
	v := &model.Vendor{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, contact, notes FROM vendors WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Contact, &v.Notes)
	if err != nil {
		return nil, mapErr(err)
	}
	return v, nil
}

func (s *Store) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, contact, notes FROM vendors ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []model.Vendor{}
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.Notes); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, v)
	}
	return out, mapErr(rows.Err())
}
