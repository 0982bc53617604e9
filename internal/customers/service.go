package customers

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

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a customer built from the validated field map. The identifier
// is used exactly as supplied.
func (s *Service) Create(ctx context.Context, fields schema.FieldMap) (*Customer, error) {
	customer := Customer{
		ID:           fields.String("CustomerID"),
		CompanyName:  fields.String("CompanyName"),
		ContactName:  fields.StringPtr("ContactName"),
		ContactTitle: fields.StringPtr("ContactTitle"),
		Address:      fields.StringPtr("Address"),
		City:         fields.StringPtr("City"),
		Region:       fields.StringPtr("Region"),
		PostalCode:   fields.StringPtr("PostalCode"),
		Country:      fields.StringPtr("Country"),
		Phone:        fields.StringPtr("Phone"),
		Fax:          fields.StringPtr("Fax"),
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Create(ctx, customer)
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

// customerColumnsByField maps updatable input fields to their columns. The
// identifier is deliberately absent: it is immutable after creation.
var customerColumnsByField = map[string]string{
	"CompanyName":  "company_name",
	"ContactName":  "contact_name",
	"ContactTitle": "contact_title",
	"Address":      "address",
	"City":         "city",
	"Region":       "region",
	"PostalCode":   "postal_code",
	"Country":      "country",
	"Phone":        "phone",
	"Fax":          "fax",
}

// Update overwrites exactly the supplied fields and returns the merged row.
func (s *Service) Update(ctx context.Context, id string, fields schema.FieldMap) (*Customer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	for field, column := range customerColumnsByField {
		if fields.Has(field) {
			updates[column] = fields.String(field)
		}
	}
	if len(updates) == 0 {
		return existing, nil
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, updates)
	})
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// Delete removes the customer row only. Orders referencing the customer are
// left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
}
