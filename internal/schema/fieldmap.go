package schema

// Typed accessors over a validated FieldMap. Each returns the zero value when
// the field is absent; the pointer variants return nil instead so callers can
// distinguish "not supplied" during partial merges.

// Has reports whether the field was present in the input.
func (m FieldMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// String returns a string field.
func (m FieldMap) String(name string) string {
	v, _ := m[name].(string)
	return v
}

// StringPtr returns a string field, nil when absent.
func (m FieldMap) StringPtr(name string) *string {
	if v, ok := m[name].(string); ok {
		return &v
	}
	return nil
}

// Int returns an integer field.
func (m FieldMap) Int(name string) int64 {
	v, _ := m[name].(int64)
	return v
}

// IntPtr returns an integer field, nil when absent.
func (m FieldMap) IntPtr(name string) *int64 {
	if v, ok := m[name].(int64); ok {
		return &v
	}
	return nil
}

// SmallInt returns a small-integer field.
func (m FieldMap) SmallInt(name string) int16 {
	v, _ := m[name].(int16)
	return v
}

// SmallIntPtr returns a small-integer field, nil when absent.
func (m FieldMap) SmallIntPtr(name string) *int16 {
	if v, ok := m[name].(int16); ok {
		return &v
	}
	return nil
}

// Decimal returns a decimal field.
func (m FieldMap) Decimal(name string) Decimal {
	v, _ := m[name].(Decimal)
	return v
}

// DecimalPtr returns a decimal field, nil when absent.
func (m FieldMap) DecimalPtr(name string) *Decimal {
	if v, ok := m[name].(Decimal); ok {
		return &v
	}
	return nil
}

// Bool returns a boolean field.
func (m FieldMap) Bool(name string) bool {
	v, _ := m[name].(bool)
	return v
}

// Date returns a date field.
func (m FieldMap) Date(name string) Date {
	v, _ := m[name].(Date)
	return v
}

// DatePtr returns a date field, nil when absent.
func (m FieldMap) DatePtr(name string) *Date {
	if v, ok := m[name].(Date); ok {
		return &v
	}
	return nil
}

// Nested returns an embedded object-sequence field.
func (m FieldMap) Nested(name string) []FieldMap {
	v, _ := m[name].([]FieldMap)
	return v
}
