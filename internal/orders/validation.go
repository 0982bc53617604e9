package orders

import "github.com/northwind-api/northwind-api/internal/schema"

var detailSchema = schema.New("OrderDetail",
	schema.Field{Name: "ProductID", Kind: schema.KindInteger},
	schema.Field{Name: "UnitPrice", Kind: schema.KindDecimal},
	schema.Field{Name: "Quantity", Kind: schema.KindSmallInt},
	schema.Field{Name: "Discount", Kind: schema.KindDecimal},
)

var orderSchema = schema.New("Order",
	schema.Field{Name: "OrderID", Kind: schema.KindInteger},
	schema.Field{Name: "CustomerID", Kind: schema.KindString, Required: true},
	schema.Field{Name: "EmployeeID", Kind: schema.KindInteger},
	schema.Field{Name: "OrderDate", Kind: schema.KindDate, Required: true},
	schema.Field{Name: "RequiredDate", Kind: schema.KindDate},
	schema.Field{Name: "ShippedDate", Kind: schema.KindDate},
	schema.Field{Name: "ShipVia", Kind: schema.KindInteger},
	schema.Field{Name: "Freight", Kind: schema.KindDecimal},
	schema.Field{Name: "ShipName", Kind: schema.KindString},
	schema.Field{Name: "ShipAddress", Kind: schema.KindString},
	schema.Field{Name: "ShipCity", Kind: schema.KindString},
	schema.Field{Name: "ShipRegion", Kind: schema.KindString},
	schema.Field{Name: "ShipPostalCode", Kind: schema.KindString},
	schema.Field{Name: "ShipCountry", Kind: schema.KindString},
).WithNested("details", detailSchema)

// ValidateInput checks a decoded request body against the order schema,
// including any nested details.
func ValidateInput(raw map[string]any, mode schema.Mode) (schema.FieldMap, schema.FieldErrors) {
	return orderSchema.Validate(raw, mode)
}
