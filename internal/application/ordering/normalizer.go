package ordering

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalTimeLayout renders instants in UTC with millisecond
// precision and a Z designator, e.g. 2023-07-20T12:00:00.000Z.
const CanonicalTimeLayout = "2006-01-02T15:04:05.000Z07:00"

const dateOnlyLayout = "2006-01-02"

// NormalizedOrder holds an order payload after field mapping. Fields
// that failed coercion are nil; Violations reports them.
type NormalizedOrder struct {
	OrderID      string
	Value        *float64
	CreationDate *time.Time
	Items        []NormalizedItem
}

// NormalizedItem holds a line item after field mapping
type NormalizedItem struct {
	ProductID *int64
	Quantity  *float64
	Price     *float64
}

// FieldViolation points at a payload field that is missing or could
// not be coerced
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the post-mapping completeness violations
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order payload failed validation on %d field(s)", len(e.Violations))
}

// Normalize maps the source-system payload onto the internal field
// names. It never fails: fields that cannot be coerced come back nil
// and are caught by Violations.
func Normalize(payload OrderPayload) NormalizedOrder {
	out := NormalizedOrder{
		OrderID: normalizeOrderID(payload.NumeroPedido),
		Items:   make([]NormalizedItem, len(payload.Items)),
	}
	if v, ok := payload.ValorTotal.Float64(); ok {
		out.Value = &v
	}
	if t, ok := parseCreationDate(payload.DataCriacao); ok {
		out.CreationDate = &t
	}
	for i, item := range payload.Items {
		if id, ok := item.IDItem.Int64(); ok {
			out.Items[i].ProductID = &id
		}
		if q, ok := item.QuantidadeItem.Float64(); ok {
			out.Items[i].Quantity = &q
		}
		if p, ok := item.ValorItem.Float64(); ok {
			out.Items[i].Price = &p
		}
	}
	return out
}

// Violations runs the completeness check over the normalized order.
// An empty result means every mapped field carries a usable value.
func (n NormalizedOrder) Violations() []FieldViolation {
	var out []FieldViolation
	if n.OrderID == "" {
		out = append(out, FieldViolation{Field: "orderId", Message: "numeroPedido yields an empty order identifier"})
	}
	if n.Value == nil {
		out = append(out, FieldViolation{Field: "value", Message: "valorTotal is not a valid number"})
	}
	if n.CreationDate == nil {
		out = append(out, FieldViolation{Field: "creationDate", Message: "dataCriacao is not a valid date"})
	}
	if len(n.Items) == 0 {
		out = append(out, FieldViolation{Field: "items", Message: "order must contain at least one item"})
	}
	for i, item := range n.Items {
		if item.ProductID == nil {
			out = append(out, FieldViolation{Field: fmt.Sprintf("items[%d].productId", i), Message: "idItem is not a valid integer"})
		}
		if item.Quantity == nil {
			out = append(out, FieldViolation{Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantidadeItem is not a valid number"})
		}
		if item.Price == nil {
			out = append(out, FieldViolation{Field: fmt.Sprintf("items[%d].price", i), Message: "valorItem is not a valid number"})
		}
	}
	return out
}

// normalizeOrderID keeps the part of the external reference before the
// first dash and trims surrounding whitespace.
func normalizeOrderID(raw string) string {
	head, _, _ := strings.Cut(raw, "-")
	return strings.TrimSpace(head)
}

// parseCreationDate accepts RFC 3339 timestamps and bare dates. Bare
// dates are taken as UTC midnight, matching how the upstream system
// emits them. The result is truncated to millisecond precision.
func parseCreationDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC().Truncate(time.Millisecond), true
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, raw, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}
