package products

import (
	"context"
	"fmt"

	"github.com/northwind-api/northwind-api/internal/schema"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a product built from the validated field map. The identifier
// is assigned by storage; a submitted ProductID is ignored.
func (s *Service) Create(ctx context.Context, fields schema.FieldMap) (*Product, error) {
	product := Product{
		Name:            fields.String("ProductName"),
		SupplierID:      fields.IntPtr("SupplierID"),
		CategoryID:      fields.IntPtr("CategoryID"),
		QuantityPerUnit: fields.StringPtr("QuantityPerUnit"),
		UnitPrice:       fields.DecimalPtr("UnitPrice"),
		UnitsInStock:    fields.SmallIntPtr("UnitsInStock"),
		UnitsOnOrder:    fields.SmallIntPtr("UnitsOnOrder"),
		ReorderLevel:    fields.SmallIntPtr("ReorderLevel"),
		Discontinued:    fields.Bool("Discontinued"),
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		id, err := repo.Create(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// Update overwrites exactly the supplied fields and returns the merged row.
// ProductID is immutable and skipped.
func (s *Service) Update(ctx context.Context, id int64, fields schema.FieldMap) (*Product, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if fields.Has("ProductName") {
		updates["name"] = fields.String("ProductName")
	}
	if fields.Has("SupplierID") {
		updates["supplier_id"] = fields.Int("SupplierID")
	}
	if fields.Has("CategoryID") {
		updates["category_id"] = fields.Int("CategoryID")
	}
	if fields.Has("QuantityPerUnit") {
		updates["quantity_per_unit"] = fields.String("QuantityPerUnit")
	}
	if fields.Has("UnitPrice") {
		updates["unit_price"] = float64(fields.Decimal("UnitPrice"))
	}
	if fields.Has("UnitsInStock") {
		updates["units_in_stock"] = fields.SmallInt("UnitsInStock")
	}
	if fields.Has("UnitsOnOrder") {
		updates["units_on_order"] = fields.SmallInt("UnitsOnOrder")
	}
	if fields.Has("ReorderLevel") {
		updates["reorder_level"] = fields.SmallInt("ReorderLevel")
	}
	if fields.Has("Discontinued") {
		updates["discontinued"] = fields.Bool("Discontinued")
	}
	if len(updates) == 0 {
		return existing, nil
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, updates)
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
}
