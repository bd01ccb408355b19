package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// OrderSchema whitelists order keys and names the defaults.
type OrderSchema struct {
	// Fields maps an order key to the column it sorts by.
	Fields         map[string]string
	DefaultKey     string
	DefaultDesc    bool
	TieBreakerKey  string
	TieBreakerDesc bool
}

// OrderTerm is one resolved sort column.
type OrderTerm struct {
	Key    string
	Column string
	Desc   bool
}

// Order is the resolved primary sort plus a tie-breaker for stable pagination.
type Order struct {
	Primary   OrderTerm
	Secondary OrderTerm
}

// Terms returns the sort columns in application order.
func (o Order) Terms() []OrderTerm {
	if o.Secondary.Column == "" {
		return []OrderTerm{o.Primary}
	}
	return []OrderTerm{o.Primary, o.Secondary}
}

// ParseOrderBy resolves an order_by string of the form "key [asc|desc][, key [asc|desc]]".
func ParseOrderBy(raw string, schema OrderSchema) (Order, error) {
	defaultCol, ok := schema.Fields[schema.DefaultKey]
	if !ok {
		return Order{}, fmt.Errorf("default order key %q missing from schema", schema.DefaultKey)
	}
	tieCol, ok := schema.Fields[schema.TieBreakerKey]
	if !ok {
		return Order{}, fmt.Errorf("tie-breaker key %q missing from schema", schema.TieBreakerKey)
	}

	var terms []OrderTerm
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return Order{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		col, ok := schema.Fields[parts[0]]
		if !ok {
			return Order{}, fmt.Errorf("field %q cannot be used for ordering", parts[0])
		}
		desc := false
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return Order{}, fmt.Errorf("invalid direction %q for field %q", parts[1], parts[0])
			}
		}
		for _, prev := range terms {
			if prev.Key == parts[0] {
				return Order{}, fmt.Errorf("duplicate order key %q", parts[0])
			}
		}
		terms = append(terms, OrderTerm{Key: parts[0], Column: col, Desc: desc})
	}
	if len(terms) > 2 {
		return Order{}, errors.New("order_by supports at most two keys")
	}

	order := Order{
		Primary:   OrderTerm{Key: schema.DefaultKey, Column: defaultCol, Desc: schema.DefaultDesc},
		Secondary: OrderTerm{Key: schema.TieBreakerKey, Column: tieCol, Desc: schema.TieBreakerDesc},
	}
	if len(terms) > 0 {
		order.Primary = terms[0]
	}
	if len(terms) > 1 {
		order.Secondary = terms[1]
	}
	if order.Secondary.Key == order.Primary.Key {
		order.Secondary = OrderTerm{}
	}
	return order, nil
}
