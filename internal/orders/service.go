package orders

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

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts the order row and every nested detail row as one atomic
// unit. A failed detail insert rolls back the order as well.
func (s *Service) Create(ctx context.Context, fields schema.FieldMap) (*Order, error) {
	details := fields.Nested("details")

	order := Order{
		CustomerID:     fields.String("CustomerID"),
		EmployeeID:     fields.IntPtr("EmployeeID"),
		OrderDate:      fields.Date("OrderDate"),
		RequiredDate:   fields.DatePtr("RequiredDate"),
		ShippedDate:    fields.DatePtr("ShippedDate"),
		ShipVia:        fields.IntPtr("ShipVia"),
		Freight:        fields.DecimalPtr("Freight"),
		ShipName:       fields.StringPtr("ShipName"),
		ShipAddress:    fields.StringPtr("ShipAddress"),
		ShipCity:       fields.StringPtr("ShipCity"),
		ShipRegion:     fields.StringPtr("ShipRegion"),
		ShipPostalCode: fields.StringPtr("ShipPostalCode"),
		ShipCountry:    fields.StringPtr("ShipCountry"),
	}

	var id int64
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		id, err = repo.Create(ctx, order)
		if err != nil {
			return err
		}
		for _, d := range details {
			detail := OrderDetail{
				OrderID:   id,
				ProductID: d.Int("ProductID"),
				UnitPrice: d.Decimal("UnitPrice"),
				Quantity:  d.SmallInt("Quantity"),
				Discount:  d.Decimal("Discount"),
			}
			if err := repo.InsertDetail(ctx, detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// Update overwrites exactly the supplied order fields. A submitted details
// field is ignored: line items are not mutable through this path.
func (s *Service) Update(ctx context.Context, id int64, fields schema.FieldMap) (*Order, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if fields.Has("CustomerID") {
		updates["customer_id"] = fields.String("CustomerID")
	}
	if fields.Has("EmployeeID") {
		updates["employee_id"] = fields.Int("EmployeeID")
	}
	if fields.Has("OrderDate") {
		updates["order_date"] = fields.Date("OrderDate").Time
	}
	if fields.Has("RequiredDate") {
		updates["required_date"] = fields.Date("RequiredDate").Time
	}
	if fields.Has("ShippedDate") {
		updates["shipped_date"] = fields.Date("ShippedDate").Time
	}
	if fields.Has("ShipVia") {
		updates["ship_via"] = fields.Int("ShipVia")
	}
	if fields.Has("Freight") {
		updates["freight"] = float64(fields.Decimal("Freight"))
	}
	if fields.Has("ShipName") {
		updates["ship_name"] = fields.String("ShipName")
	}
	if fields.Has("ShipAddress") {
		updates["ship_address"] = fields.String("ShipAddress")
	}
	if fields.Has("ShipCity") {
		updates["ship_city"] = fields.String("ShipCity")
	}
	if fields.Has("ShipRegion") {
		updates["ship_region"] = fields.String("ShipRegion")
	}
	if fields.Has("ShipPostalCode") {
		updates["ship_postal_code"] = fields.String("ShipPostalCode")
	}
	if fields.Has("ShipCountry") {
		updates["ship_country"] = fields.String("ShipCountry")
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, updates)
	})
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// Delete removes the order and all its detail rows in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if err := repo.DeleteDetails(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

// History returns the customer's orders, most recent order date first.
// A missing customer yields ErrCustomerNotFound; a customer without orders
// yields an empty slice.
func (s *Service) History(ctx context.Context, customerID string) ([]Order, error) {
	exists, err := s.repo.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
