package tools

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// decimals is the number of fractional digits printed for non-integral results.
const decimals = 20

// postfixBang matches "5!" so it can be rewritten to "fact(5)".
var postfixBang = regexp.MustCompile(`(\d+)!`)

// calc evaluates an arithmetic expression such as "2+fact(5)*3" exactly.
// Supported: +, -, *, /, unary minus, parentheses, fact(x), factorial(x)
// and the postfix form "n!".
func calc(args map[string]interface{}) (string, error) {
	expr, ok := args["expr"].(string)
	if !ok {
		expr, ok = args["expression"].(string)
	}

	if !ok || strings.TrimSpace(expr) == "" {
		return "", errors.New("parameter 'expr' or 'expression' must be a non-empty string")
	}

	expr = postfixBang.ReplaceAllString(expr, "fact($1)")

	astExpr, err := parser.ParseExpr(expr)
	if err != nil {
		return "", errors.Wrap(err, "expression parse error")
	}

	val, err := evalAST(astExpr)
	if err != nil {
		return "", err
	}

	return formatRat(val), nil
}

func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	s := strings.TrimRight(r.FloatString(decimals), "0")
	return strings.TrimSuffix(s, ".")
}

func evalAST(expr ast.Expr) (*big.Rat, error) {
	switch n := expr.(type) {
	case *ast.BasicLit:
		switch n.Kind {
		case token.INT:
			i, ok := new(big.Int).SetString(n.Value, 0)
			if !ok {
				return nil, errors.Errorf("invalid integer literal: %s", n.Value)
			}
			return new(big.Rat).SetInt(i), nil
		case token.FLOAT:
			r, ok := new(big.Rat).SetString(n.Value)
			if !ok {
				return nil, errors.Errorf("invalid number literal: %s", n.Value)
			}
			return r, nil
		default:
			return nil, errors.Errorf("unsupported literal: %s", n.Value)
		}

	case *ast.UnaryExpr:
		if n.Op != token.SUB {
			return nil, errors.Errorf("unsupported operator: %s", n.Op.String())
		}
		v, err := evalAST(n.X)
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil

	case *ast.BinaryExpr:
		left, err := evalAST(n.X)
		if err != nil {
			return nil, err
		}
		right, err := evalAST(n.Y)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case token.ADD:
			return left.Add(left, right), nil
		case token.SUB:
			return left.Sub(left, right), nil
		case token.MUL:
			return left.Mul(left, right), nil
		case token.QUO:
			if right.Sign() == 0 {
				return nil, errors.New("division by zero")
			}
			return left.Quo(left, right), nil
		default:
			return nil, errors.Errorf("unsupported operator: %s", n.Op.String())
		}

	case *ast.ParenExpr:
		return evalAST(n.X)

	case *ast.CallExpr:
		return evalCall(n)

	default:
		return nil, errors.Errorf("unsupported expression: %T", n)
	}
}

func evalCall(call *ast.CallExpr) (*big.Rat, error) {
	ident, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil, errors.Errorf("unsupported call: %T", call.Fun)
	}
	if ident.Name != "fact" && ident.Name != "factorial" {
		return nil, errors.Errorf("unsupported function: %s", ident.Name)
	}
	if len(call.Args) != 1 {
		return nil, errors.Errorf("%s expects 1 argument, got %d", ident.Name, len(call.Args))
	}

	arg, err := evalAST(call.Args[0])
	if err != nil {
		return nil, err
	}
	if !arg.IsInt() || !arg.Num().IsInt64() {
		return nil, errors.Errorf("%s argument must be an integer, got %s", ident.Name, formatRat(arg))
	}

	v, err := Compute(arg.Num().Int64())
	if err != nil {
		return nil, err
	}

	return new(big.Rat).SetInt(v), nil
}
