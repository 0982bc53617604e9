// Package schema validates untyped JSON objects against per-entity field
// declarations and coerces them into typed field maps. Validation is a pure
// function of the input and mode; it performs no defaulting and never touches
// the transport or storage layers.
package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Mode selects which presence rules apply during validation.
type Mode int

const (
	// Full enforces required fields; used for creation payloads.
	Full Mode = iota
	// Partial accepts any subset of fields; used for update payloads.
	Partial
)

// Kind is the semantic type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindSmallInt
	KindDecimal
	KindBoolean
	KindDate
)

// Validation messages kept byte-compatible with the previous API generation.
const (
	msgRequired   = "Missing data for required field."
	msgNull       = "Field may not be null."
	msgUnknown    = "Unknown field."
	msgNotString  = "Not a valid string."
	msgNotInteger = "Not a valid integer."
	msgNotNumber  = "Not a valid number."
	msgNotBoolean = "Not a valid boolean."
	msgNotDate    = "Not a valid date."
	msgNotList    = "Not a valid list."
	msgNotObject  = "Not a valid object."
)

// Field declares one validated entity attribute.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// ExactLen constrains string length when > 0; LenMessage overrides the
	// default violation message.
	ExactLen   int
	LenMessage string

	// MinValue constrains numeric fields when set; MinMessage overrides the
	// default violation message.
	MinValue   *float64
	MinMessage string
}

// Schema is an ordered field set for one entity.
type Schema struct {
	Name   string
	fields []Field
	byName map[string]Field

	// nested maps a field name to the element schema of an embedded object
	// sequence. Elements are validated in Partial mode.
	nested map[string]*Schema
}

// New builds a schema from field declarations.
func New(name string, fields ...Field) *Schema {
	s := &Schema{
		Name:   name,
		fields: fields,
		byName: make(map[string]Field, len(fields)),
		nested: make(map[string]*Schema),
	}
	for _, f := range fields {
		s.byName[f.Name] = f
	}
	return s
}

// WithNested registers an embedded object-sequence field, such as an order's
// detail lines.
func (s *Schema) WithNested(name string, element *Schema) *Schema {
	s.nested[name] = element
	return s
}

// FieldMap holds coerced, typed values for exactly the fields present in the
// input.
type FieldMap map[string]any

// FieldErrors maps field names to one or more human-readable messages. It is
// returned verbatim to the caller as the error payload.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Validate checks raw input against the schema. On success it returns the
// coerced field map and a nil error map; on failure the error map holds every
// violation found.
func (s *Schema) Validate(raw map[string]any, mode Mode) (FieldMap, FieldErrors) {
	out := make(FieldMap, len(raw))
	errs := make(FieldErrors)

	for name, value := range raw {
		if element, ok := s.nested[name]; ok {
			items, itemErrs := validateNested(name, element, value)
			for k, msgs := range itemErrs {
				errs[k] = append(errs[k], msgs...)
			}
			if len(itemErrs) == 0 {
				out[name] = items
			}
			continue
		}

		field, ok := s.byName[name]
		if !ok {
			errs.Add(name, msgUnknown)
			continue
		}
		if value == nil {
			errs.Add(name, msgNull)
			continue
		}

		coerced, msg := coerce(field.Kind, value)
		if msg != "" {
			errs.Add(name, msg)
			continue
		}
		if msg := field.check(coerced); msg != "" {
			errs.Add(name, msg)
			continue
		}
		out[name] = coerced
	}

	if mode == Full {
		for _, field := range s.fields {
			if !field.Required {
				continue
			}
			if _, present := raw[field.Name]; !present {
				errs.Add(field.Name, msgRequired)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func validateNested(name string, element *Schema, value any) ([]FieldMap, FieldErrors) {
	errs := make(FieldErrors)

	list, ok := value.([]any)
	if !ok {
		errs.Add(name, msgNotList)
		return nil, errs
	}

	items := make([]FieldMap, 0, len(list))
	for i, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			errs.Add(fmt.Sprintf("%s.%d", name, i), msgNotObject)
			continue
		}
		fm, itemErrs := element.Validate(obj, Partial)
		for field, msgs := range itemErrs {
			errs[fmt.Sprintf("%s.%d.%s", name, i, field)] = msgs
		}
		if len(itemErrs) == 0 {
			items = append(items, fm)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return items, nil
}

func (f Field) check(v any) string {
	if f.ExactLen > 0 {
		if s, ok := v.(string); ok && len(s) != f.ExactLen {
			if f.LenMessage != "" {
				return f.LenMessage
			}
			return fmt.Sprintf("%s must be %d characters.", f.Name, f.ExactLen)
		}
	}
	if f.MinValue != nil {
		if n, ok := numericValue(v); ok && n < *f.MinValue {
			if f.MinMessage != "" {
				return f.MinMessage
			}
			return fmt.Sprintf("Must be greater than or equal to %v.", *f.MinValue)
		}
	}
	return ""
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int16:
		return float64(n), true
	case Decimal:
		return float64(n), true
	}
	return 0, false
}

func coerce(kind Kind, value any) (any, string) {
	switch kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, msgNotString
		}
		return s, ""
	case KindInteger:
		n, ok := toInt64(value)
		if !ok {
			return nil, msgNotInteger
		}
		return n, ""
	case KindSmallInt:
		n, ok := toInt64(value)
		if !ok || n < math.MinInt16 || n > math.MaxInt16 {
			return nil, msgNotInteger
		}
		return int16(n), ""
	case KindDecimal:
		f, ok := toFloat64(value)
		if !ok {
			return nil, msgNotNumber
		}
		return Decimal(f), ""
	case KindBoolean:
		b, ok := toBool(value)
		if !ok {
			return nil, msgNotBoolean
		}
		return b, ""
	case KindDate:
		s, ok := value.(string)
		if !ok {
			return nil, msgNotDate
		}
		d, err := ParseDate(s)
		if err != nil {
			return nil, msgNotDate
		}
		return d, ""
	}
	return nil, msgUnknown
}

func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func toBool(value any) (bool, bool) {
	switch b := value.(type) {
	case bool:
		return b, true
	case float64:
		if b == 0 {
			return false, true
		}
		if b == 1 {
			return true, true
		}
	case int:
		if b == 0 {
			return false, true
		}
		if b == 1 {
			return true, true
		}
	case string:
		switch b {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	}
	return false, false
}
