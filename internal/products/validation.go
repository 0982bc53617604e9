package products

import "github.com/northwind-api/northwind-api/internal/schema"

var zero = 0.0

var productSchema = schema.New("Product",
	schema.Field{Name: "ProductID", Kind: schema.KindInteger},
	schema.Field{Name: "ProductName", Kind: schema.KindString, Required: true},
	schema.Field{Name: "SupplierID", Kind: schema.KindInteger},
	schema.Field{Name: "CategoryID", Kind: schema.KindInteger},
	schema.Field{Name: "QuantityPerUnit", Kind: schema.KindString},
	schema.Field{Name: "UnitPrice", Kind: schema.KindDecimal, MinValue: &zero, MinMessage: "Unit price must be positive."},
	schema.Field{Name: "UnitsInStock", Kind: schema.KindSmallInt},
	schema.Field{Name: "UnitsOnOrder", Kind: schema.KindSmallInt},
	schema.Field{Name: "ReorderLevel", Kind: schema.KindSmallInt},
	schema.Field{Name: "Discontinued", Kind: schema.KindBoolean},
)

// ValidateInput checks a decoded request body against the product schema.
func ValidateInput(raw map[string]any, mode schema.Mode) (schema.FieldMap, schema.FieldErrors) {
	return productSchema.Validate(raw, mode)
}
