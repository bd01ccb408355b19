package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the kind of literal value a field accepts.
type ValueKind string

const (
	KindBool      ValueKind = "bool"
	KindNumber    ValueKind = "number"
	KindTimestamp ValueKind = "timestamp"
)

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
)

// FilterField maps a filter identifier to destination fields per operator.
type FilterField struct {
	Kind ValueKind
	Ops  map[Op]string
}

// ResourceSchema aggregates filtering and ordering rules for a resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

var timeType = reflect.TypeOf(time.Time{})

// Bind parses the filter into binding and resolves the requested ordering.
// Only conjunctions of comparisons between an identifier and a literal are accepted.
func Bind[M Msg, P any](msg M, binding *P, schema ResourceSchema) (Order, error) {
	if binding == nil {
		return Order{}, errors.New("binding must not be nil")
	}
	if err := bindFilter(binding, msg.GetFilter(), schema.Filter); err != nil {
		return Order{}, fmt.Errorf("filter: %w", err)
	}
	order, err := ParseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return Order{}, fmt.Errorf("order_by: %w", err)
	}
	return order, nil
}

type predicate struct {
	field string
	op    Op
	value any
}

func bindFilter(binding any, filter string, fields map[string]FilterField) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return errors.New("filter schema has no fields defined")
	}

	dest := reflect.ValueOf(binding)
	if dest.Kind() != reflect.Ptr || dest.IsNil() || dest.Elem().Kind() != reflect.Struct {
		return errors.New("binding must be a non-nil pointer to a struct")
	}
	dest = dest.Elem()

	env, err := newEnv(fields)
	if err != nil {
		return err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return fmt.Errorf("convert AST: %w", err)
	}
	conjuncts, err := flattenAnd(parsed.GetExpr())
	if err != nil {
		return err
	}

	for _, expr := range conjuncts {
		pred, err := parseComparison(expr)
		if err != nil {
			return err
		}
		rule, ok := fields[pred.field]
		if !ok {
			return fmt.Errorf("field %q is not allowed", pred.field)
		}
		target, ok := rule.Ops[pred.op]
		if !ok {
			return fmt.Errorf("operator %q is not allowed for field %q", string(pred.op), pred.field)
		}
		if err := checkKind(rule.Kind, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}
		field := dest.FieldByName(target)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", dest.Type(), target)
		}
		if err := assign(field, pred.value); err != nil {
			return fmt.Errorf("assign field %q: %w", target, err)
		}
	}
	return nil
}

func newEnv(fields map[string]FilterField) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields)+1)
	for name, rule := range fields {
		var typ *cel.Type
		switch rule.Kind {
		case KindBool:
			typ = cel.BoolType
		case KindNumber:
			typ = cel.DoubleType
		case KindTimestamp:
			typ = cel.TimestampType
		default:
			return nil, fmt.Errorf("field %q: unsupported kind %s", name, rule.Kind)
		}
		opts = append(opts, cel.Variable(name, typ))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

// flattenAnd turns the binary && tree produced by the parser into a flat list.
func flattenAnd(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}
	switch call.Function {
	case "_&&_":
		var out []*exprpb.Expr
		for _, arg := range call.Args {
			nested, err := flattenAnd(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		}
		return out, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("logical operator %q is not supported; only AND is allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

func parseComparison(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("unsupported expression; expected a comparison")
	}
	var op Op
	switch call.Function {
	case "_==_":
		op = OpEQ
	case "_>=_":
		op = OpGTE
	case "_<=_":
		op = OpLTE
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}
	if call.Target != nil || len(call.Args) != 2 {
		return predicate{}, fmt.Errorf("operator %q expects two operands", string(op))
	}
	ident := call.Args[0].GetIdentExpr()
	if ident == nil {
		return predicate{}, errors.New("left-hand side must be an identifier")
	}
	value, err := parseLiteral(call.Args[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: ident.GetName(), op: op, value: value}, nil
}

func parseLiteral(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		switch constant.ConstantKind.(type) {
		case *exprpb.Constant_BoolValue:
			return constant.GetBoolValue(), nil
		case *exprpb.Constant_Int64Value:
			return float64(constant.GetInt64Value()), nil
		case *exprpb.Constant_Uint64Value:
			return float64(constant.GetUint64Value()), nil
		case *exprpb.Constant_DoubleValue:
			return constant.GetDoubleValue(), nil
		default:
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
	}

	if call := expr.GetCallExpr(); call != nil && call.Function == "timestamp" {
		if call.Target != nil || len(call.Args) != 1 || call.Args[0].GetConstExpr() == nil {
			return nil, errors.New("timestamp() expects a single string literal")
		}
		raw := call.Args[0].GetConstExpr().GetStringValue()
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("timestamp literal %q is not RFC3339", raw)
		}
		return t, nil
	}

	return nil, errors.New("right-hand side must be a literal or timestamp() call")
}

func checkKind(kind ValueKind, value any) error {
	var ok bool
	switch kind {
	case KindBool:
		_, ok = value.(bool)
	case KindNumber:
		_, ok = value.(float64)
	case KindTimestamp:
		_, ok = value.(time.Time)
	default:
		return fmt.Errorf("unsupported field kind %s", kind)
	}
	if !ok {
		return fmt.Errorf("expected %s literal", kind)
	}
	return nil
}

func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}

	switch v := value.(type) {
	case bool:
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("expected bool destination, got %s", field.Kind())
		}
		field.SetBool(v)
	case float64:
		return assignNumber(field, v)
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("expected time.Time destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}

func assignNumber(field reflect.Value, value float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(value) != value {
			return fmt.Errorf("cannot assign non-integer value %v to integer field", value)
		}
		if field.OverflowInt(int64(value)) {
			return fmt.Errorf("value %v overflows integer field", value)
		}
		field.SetInt(int64(value))
	default:
		return fmt.Errorf("numeric assignment requires integer or float field, got %s", field.Kind())
	}
	return nil
}
