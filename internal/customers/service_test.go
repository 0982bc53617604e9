package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-api/northwind-api/internal/schema"
)

type mockRepository struct {
	rows    map[string]*Customer
	txError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{rows: make(map[string]*Customer)}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	if m.txError != nil {
		return m.txError
	}
	return fn(ctx, m)
}

func (m *mockRepository) List(ctx context.Context) ([]Customer, error) {
	result := []Customer{}
	for _, c := range m.rows {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Customer, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockRepository) Create(ctx context.Context, c Customer) error {
	m.rows[c.ID] = &c
	return nil
}

var mockColumnSetters = map[string]func(*Customer, string){
	"company_name":  func(c *Customer, v string) { c.CompanyName = v },
	"contact_name":  func(c *Customer, v string) { c.ContactName = &v },
	"contact_title": func(c *Customer, v string) { c.ContactTitle = &v },
	"address":       func(c *Customer, v string) { c.Address = &v },
	"city":          func(c *Customer, v string) { c.City = &v },
	"region":        func(c *Customer, v string) { c.Region = &v },
	"postal_code":   func(c *Customer, v string) { c.PostalCode = &v },
	"country":       func(c *Customer, v string) { c.Country = &v },
	"phone":         func(c *Customer, v string) { c.Phone = &v },
	"fax":           func(c *Customer, v string) { c.Fax = &v },
}

func (m *mockRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	c, ok := m.rows[id]
	if !ok {
		return ErrNotFound
	}
	for column, value := range updates {
		setter, ok := mockColumnSetters[column]
		if !ok {
			continue
		}
		setter(c, value.(string))
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	fields, errs := ValidateInput(map[string]any{
		"CustomerID":  "ALFKI",
		"CompanyName": "Alfreds Futterkiste",
		"City":        "Berlin",
	}, schema.Full)
	require.Nil(t, errs)

	created, err := service.Create(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, "ALFKI", created.ID)

	got, err := service.Get(context.Background(), "ALFKI")
	require.NoError(t, err)
	assert.Equal(t, "Alfreds Futterkiste", got.CompanyName)
	require.NotNil(t, got.City)
	assert.Equal(t, "Berlin", *got.City)

	// Omitted optional fields keep their defaults.
	assert.Nil(t, got.ContactName)
	assert.Nil(t, got.Phone)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	city := "Berlin"
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste", City: &city}

	fields, errs := ValidateInput(map[string]any{"ContactName": "Maria Anders"}, schema.Partial)
	require.Nil(t, errs)

	updated, err := service.Update(context.Background(), "ALFKI", fields)
	require.NoError(t, err)
	require.NotNil(t, updated.ContactName)
	assert.Equal(t, "Maria Anders", *updated.ContactName)
	assert.Equal(t, "Alfreds Futterkiste", updated.CompanyName)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Berlin", *updated.City)
}

func TestUpdateEmptyFieldSetIsNoOp(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	city := "Berlin"
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste", City: &city}

	updated, err := service.Update(context.Background(), "ALFKI", schema.FieldMap{})
	require.NoError(t, err)
	assert.Equal(t, "Alfreds Futterkiste", updated.CompanyName)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Berlin", *updated.City)
}

func TestUpdateIdentifierIsImmutable(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	fields, errs := ValidateInput(map[string]any{"CustomerID": "OTHER"}, schema.Partial)
	require.Nil(t, errs)

	updated, err := service.Update(context.Background(), "ALFKI", fields)
	require.NoError(t, err)
	assert.Equal(t, "ALFKI", updated.ID)
	_, err = service.Get(context.Background(), "ALFKI")
	assert.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.Update(context.Background(), "NOONE", schema.FieldMap{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	require.NoError(t, service.Delete(context.Background(), "ALFKI"))
	assert.ErrorIs(t, service.Delete(context.Background(), "ALFKI"), ErrNotFound)
}

func TestListNeverNil(t *testing.T) {
	service := NewService(newMockRepository())
	result, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
