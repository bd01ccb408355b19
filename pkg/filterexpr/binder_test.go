package filterexpr

import (
	"testing"
	"time"
)

type listParams struct {
	Learned   *bool
	MinLevel  *int
	MaxLevel  *int
	DueBefore *time.Time
}

type request struct {
	filter  string
	orderBy string
}

func (r request) GetFilter() string  { return r.filter }
func (r request) GetOrderBy() string { return r.orderBy }

var testSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"learned":     {Kind: KindBool, Ops: map[Op]string{OpEQ: "Learned"}},
		"level":       {Kind: KindNumber, Ops: map[Op]string{OpGTE: "MinLevel", OpLTE: "MaxLevel"}},
		"next_review": {Kind: KindTimestamp, Ops: map[Op]string{OpLTE: "DueBefore"}},
	},
	Order: OrderSchema{
		Fields: map[string]string{
			"next_review": "next_review",
			"level":       "learning_level",
			"id":          "id",
		},
		DefaultKey:    "next_review",
		TieBreakerKey: "id",
	},
}

func TestBindConjunction(t *testing.T) {
	var params listParams
	req := request{filter: "learned == false && level >= 2 && level <= 4 && next_review <= timestamp('2025-03-01T00:00:00Z')"}

	order, err := Bind(req, &params, testSchema)
	if err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.Learned == nil || *params.Learned {
		t.Fatalf("expected Learned=false, got %v", params.Learned)
	}
	if params.MinLevel == nil || *params.MinLevel != 2 {
		t.Fatalf("expected MinLevel=2, got %v", params.MinLevel)
	}
	if params.MaxLevel == nil || *params.MaxLevel != 4 {
		t.Fatalf("expected MaxLevel=4, got %v", params.MaxLevel)
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if params.DueBefore == nil || !params.DueBefore.Equal(want) {
		t.Fatalf("expected DueBefore=%v, got %v", want, params.DueBefore)
	}
	if order.Primary.Column != "next_review" || order.Primary.Desc {
		t.Fatalf("expected default ascending next_review order, got %+v", order.Primary)
	}
	if order.Secondary.Column != "id" {
		t.Fatalf("expected id tie-breaker, got %+v", order.Secondary)
	}
}

func TestBindEmptyFilter(t *testing.T) {
	var params listParams
	if _, err := Bind(request{}, &params, testSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.Learned != nil || params.MinLevel != nil {
		t.Fatalf("expected untouched params, got %+v", params)
	}
}

func TestBindRejects(t *testing.T) {
	cases := map[string]string{
		"disjunction":     "learned == true || level >= 1",
		"unknown field":   "created_at >= 1",
		"wrong operator":  "learned >= true",
		"fractional int":  "level >= 1.5",
		"non literal rhs": "level >= level",
		"syntax":          "level >=",
	}
	for name, filter := range cases {
		t.Run(name, func(t *testing.T) {
			var params listParams
			if _, err := Bind(request{filter: filter}, &params, testSchema); err == nil {
				t.Fatalf("expected error for %q", filter)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	order, err := ParseOrderBy("level desc, next_review", testSchema.Order)
	if err != nil {
		t.Fatalf("ParseOrderBy returned error: %v", err)
	}
	if order.Primary.Column != "learning_level" || !order.Primary.Desc {
		t.Fatalf("unexpected primary %+v", order.Primary)
	}
	if order.Secondary.Column != "next_review" || order.Secondary.Desc {
		t.Fatalf("unexpected secondary %+v", order.Secondary)
	}

	order, err = ParseOrderBy("id desc", testSchema.Order)
	if err != nil {
		t.Fatalf("ParseOrderBy returned error: %v", err)
	}
	if len(order.Terms()) != 1 {
		t.Fatalf("expected tie-breaker to collapse into primary, got %+v", order.Terms())
	}

	for _, raw := range []string{"level sideways", "level, level", "unknown", "level, id, next_review", "level desc extra"} {
		if _, err := ParseOrderBy(raw, testSchema.Order); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
