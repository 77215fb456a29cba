package team

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// Filter expression fields. Every field is a string.
const (
	FieldEntityType = "entity_type"
	FieldRole       = "role"
	FieldStatus     = "status"
	FieldEmail      = "email"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
)

// statusActive is the status reported for users in filter expressions.
const statusActive = "active"

var expressionFields = []string{
	FieldEntityType,
	FieldRole,
	FieldStatus,
	FieldEmail,
	FieldFirstName,
	FieldLastName,
}

// Expression is a parsed AIP-160 filter over team records, e.g.
// `entity_type = "invite" AND status = "expired"`.
type Expression struct {
	source string
	parsed *expr.Expr
}

// ParseExpression parses a filter string. A blank string yields a nil
// expression and no error.
func ParseExpression(source string) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}

	decls := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for _, name := range expressionFields {
		decls = append(decls, filtering.DeclareIdent(name, filtering.TypeString))
	}
	declarations, err := filtering.NewDeclarations(decls...)
	if err != nil {
		return nil, fmt.Errorf("declare filter fields: %w", err)
	}

	filter, err := filtering.ParseFilterString(source, declarations)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}
	return &Expression{source: source, parsed: filter.CheckedExpr.GetExpr()}, nil
}

// String returns the source text.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	return e.source
}

// Predicate compiles the expression against clock. Records that fail to
// evaluate do not match.
func (e *Expression) Predicate(clock func() time.Time) Predicate {
	if e == nil {
		return func(Record) bool { return true }
	}
	if clock == nil {
		clock = time.Now
	}
	return func(r Record) bool {
		now := clock()
		ok, err := evaluate(e.parsed, func(name string) (string, bool) {
			return resolveField(r, name, now)
		})
		return err == nil && ok
	}
}

func resolveField(r Record, name string, now time.Time) (string, bool) {
	if name == FieldEntityType {
		return string(r.Type()), true
	}
	type field struct {
		value string
		ok    bool
	}
	f := Visit(r,
		func(u commerce.User) field {
			switch name {
			case FieldRole:
				return field{string(u.Role), true}
			case FieldStatus:
				return field{statusActive, true}
			case FieldEmail:
				return field{u.Email, true}
			case FieldFirstName:
				return field{u.FirstName, true}
			case FieldLastName:
				return field{u.LastName, true}
			}
			return field{}
		},
		func(i commerce.Invite) field {
			switch name {
			case FieldRole, FieldFirstName, FieldLastName:
				return field{"", true}
			case FieldStatus:
				return field{string(StatusOf(i, now)), true}
			case FieldEmail:
				return field{i.UserEmail, true}
			}
			return field{}
		},
	)
	return f.value, f.ok
}

type resolver func(name string) (string, bool)

func evaluate(e *expr.Expr, resolve resolver) (bool, error) {
	if e == nil {
		return true, nil
	}
	call, ok := e.ExprKind.(*expr.Expr_CallExpr)
	if !ok {
		return false, fmt.Errorf("unsupported expression type: %T", e.ExprKind)
	}
	args := call.CallExpr.Args

	switch call.CallExpr.Function {
	case "_&&_", "AND", "FUZZY":
		if len(args) != 2 {
			return false, errors.New("AND requires 2 arguments")
		}
		left, err := evaluate(args[0], resolve)
		if err != nil || !left {
			return false, err
		}
		return evaluate(args[1], resolve)
	case "_||_", "OR":
		if len(args) != 2 {
			return false, errors.New("OR requires 2 arguments")
		}
		left, err := evaluate(args[0], resolve)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return evaluate(args[1], resolve)
	case "NOT", "-":
		if len(args) != 1 {
			return false, errors.New("NOT requires 1 argument")
		}
		inner, err := evaluate(args[0], resolve)
		return !inner, err
	case "_==_", "=":
		return compare(args, resolve, func(field, value string) bool { return field == value })
	case "_!=_", "!=":
		return compare(args, resolve, func(field, value string) bool { return field != value })
	case ":":
		return compare(args, resolve, func(field, value string) bool {
			return field != "" && strings.Contains(field, value)
		})
	default:
		return false, fmt.Errorf("unsupported function: %s", call.CallExpr.Function)
	}
}

func compare(args []*expr.Expr, resolve resolver, match func(field, value string) bool) (bool, error) {
	if len(args) != 2 {
		return false, errors.New("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return false, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	constant, ok := args[1].GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return false, fmt.Errorf("expected constant, got %T", args[1].GetExprKind())
	}
	value, ok := constant.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return false, fmt.Errorf("expected string constant, got %T", constant.ConstExpr.GetConstantKind())
	}

	name := ident.IdentExpr.GetName()
	field, ok := resolve(name)
	if !ok {
		return false, fmt.Errorf("unknown field: %s", name)
	}
	return match(field, value.StringValue), nil
}
