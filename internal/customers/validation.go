package customers

import "github.com/northwind-api/northwind-api/internal/schema"

var customerSchema = schema.New("Customer",
	schema.Field{Name: "CustomerID", Kind: schema.KindString, Required: true, ExactLen: 5, LenMessage: "CustomerID must be 5 characters."},
	schema.Field{Name: "CompanyName", Kind: schema.KindString, Required: true},
	schema.Field{Name: "ContactName", Kind: schema.KindString},
	schema.Field{Name: "ContactTitle", Kind: schema.KindString},
	schema.Field{Name: "Address", Kind: schema.KindString},
	schema.Field{Name: "City", Kind: schema.KindString},
	schema.Field{Name: "Region", Kind: schema.KindString},
	schema.Field{Name: "PostalCode", Kind: schema.KindString},
	schema.Field{Name: "Country", Kind: schema.KindString},
	schema.Field{Name: "Phone", Kind: schema.KindString},
	schema.Field{Name: "Fax", Kind: schema.KindString},
)

// ValidateInput checks a decoded request body against the customer schema.
func ValidateInput(raw map[string]any, mode schema.Mode) (schema.FieldMap, schema.FieldErrors) {
	return customerSchema.Validate(raw, mode)
}
