package expr

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var errDivideByZero = errors.New("integer divide by zero")

// Evaluator is the HCL-backed Resolver. It is safe for concurrent use;
// results are cached per expression text since parameters never change
// after construction.
type Evaluator struct {
	ctx *hcl.EvalContext

	mu    sync.RWMutex
	cache map[string]int64
}

var _ Resolver = (*Evaluator)(nil)

// NewEvaluator creates an evaluator with the given named parameters. Each
// parameter value is itself an expression; parameters are resolved in name
// order and may refer to parameters that sort before them.
func NewEvaluator(params map[string]string) (*Evaluator, error) {
	e := &Evaluator{
		ctx: &hcl.EvalContext{
			Variables: make(map[string]cty.Value, len(params)),
			Functions: functions(),
		},
		cache: make(map[string]int64),
	}

	names := make([]string, 0, len(params))
	for name := range params {
		if !hclsyntax.ValidIdentifier(name) || strings.Contains(name, "-") {
			return nil, fmt.Errorf("invalid parameter name %q", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, err := e.Evaluate(params[name])
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		e.ctx.Variables[name] = cty.NumberIntVal(v)
	}
	return e, nil
}

// MustNewEvaluator is like NewEvaluator but panics on error.
func MustNewEvaluator(params map[string]string) *Evaluator {
	e, err := NewEvaluator(params)
	if err != nil {
		panic(err)
	}
	return e
}

// Resolve implements Resolver.
func (e *Evaluator) Resolve(text string) int64 {
	v, err := e.Evaluate(text)
	if err != nil {
		return 0
	}
	return v
}

// Evaluate resolves text and reports why resolution failed, if it did.
// Empty text is an error.
func (e *Evaluator) Evaluate(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.New("empty expression")
	}

	e.mu.RLock()
	v, ok := e.cache[text]
	e.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := e.evaluate(text)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	e.cache[text] = v
	e.mu.Unlock()
	return v, nil
}

func (e *Evaluator) evaluate(text string) (int64, error) {
	src, err := rewriteLiterals(text)
	if err != nil {
		return 0, err
	}

	parsed, diags := hclsyntax.ParseExpression([]byte(src), "expression", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return 0, fmt.Errorf("parsing %q: %w", text, diags)
	}

	val, err := e.eval(parsed)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", text, err)
	}
	return toInt64(val)
}

// eval walks arithmetic nodes itself so that division and modulo are done on
// integers truncated toward zero. Everything else is delegated to HCL.
func (e *Evaluator) eval(node hclsyntax.Expression) (cty.Value, error) {
	switch n := node.(type) {
	case *hclsyntax.ParenthesesExpr:
		return e.eval(n.Expression)

	case *hclsyntax.BinaryOpExpr:
		lhs, err := e.eval(n.LHS)
		if err != nil {
			return cty.NilVal, err
		}
		rhs, err := e.eval(n.RHS)
		if err != nil {
			return cty.NilVal, err
		}
		switch n.Op {
		case hclsyntax.OpDivide, hclsyntax.OpModulo:
			return integerOp(n.Op, lhs, rhs)
		}
		return n.Op.Impl.Call([]cty.Value{lhs, rhs})

	case *hclsyntax.UnaryOpExpr:
		v, err := e.eval(n.Val)
		if err != nil {
			return cty.NilVal, err
		}
		return n.Op.Impl.Call([]cty.Value{v})

	case *hclsyntax.ConditionalExpr:
		cond, err := e.eval(n.Condition)
		if err != nil {
			return cty.NilVal, err
		}
		truth, err := toBigInt(cond)
		if err != nil {
			return cty.NilVal, fmt.Errorf("condition: %w", err)
		}
		if truth.Sign() != 0 {
			return e.eval(n.TrueResult)
		}
		return e.eval(n.FalseResult)

	case *hclsyntax.FunctionCallExpr:
		fn, ok := e.ctx.Functions[n.Name]
		if !ok {
			return cty.NilVal, fmt.Errorf("unknown function %q", n.Name)
		}
		args := make([]cty.Value, 0, len(n.Args))
		for _, a := range n.Args {
			v, err := e.eval(a)
			if err != nil {
				return cty.NilVal, err
			}
			args = append(args, v)
		}
		return fn.Call(args)
	}

	val, diags := node.Value(e.ctx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return val, nil
}

func integerOp(op *hclsyntax.Operation, lhs, rhs cty.Value) (cty.Value, error) {
	a, err := toBigInt(lhs)
	if err != nil {
		return cty.NilVal, err
	}
	b, err := toBigInt(rhs)
	if err != nil {
		return cty.NilVal, err
	}
	if b.Sign() == 0 {
		return cty.NilVal, errDivideByZero
	}
	if op == hclsyntax.OpDivide {
		return cty.NumberVal(new(big.Float).SetInt(new(big.Int).Quo(a, b))), nil
	}
	return cty.NumberVal(new(big.Float).SetInt(new(big.Int).Rem(a, b))), nil
}

// toBigInt converts a number, bool or numeric string to an integer,
// truncating toward zero.
func toBigInt(v cty.Value) (*big.Int, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, errors.New("value is null or unknown")
	}
	if v.Type() == cty.Bool {
		if v.True() {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	}
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return nil, err
	}
	f := num.AsBigFloat()
	if f.IsInf() {
		return nil, errors.New("value is infinite")
	}
	i, _ := f.Int(nil)
	return i, nil
}

func toInt64(v cty.Value) (int64, error) {
	i, err := toBigInt(v)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, fmt.Errorf("value %s overflows int64", i)
	}
	return i.Int64(), nil
}
