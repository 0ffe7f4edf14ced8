package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// text turns an attribute expression into the unresolved expression text the
// design model carries. Strings are taken as they are and numbers are
// formatted in decimal. Expressions that cannot be evaluated statically
// (typically ones referring to parameters) keep their source text so the
// resolver can evaluate them later.
func (t *translator) text(expr hcl.Expression) string {
	if expr == nil {
		return ""
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return string(expr.Range().SliceBytes(t.src))
	}
	return t.valueText(expr.Range(), val)
}

// textList is text for attributes holding a list of expressions. A single
// string is accepted as a one-element list.
func (t *translator) textList(expr hcl.Expression) []string {
	if expr == nil {
		return nil
	}
	if items, diags := hcl.ExprList(expr); !diags.HasErrors() {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, t.text(item))
		}
		return out
	}
	if s := t.text(expr); s != "" {
		return []string{s}
	}
	return nil
}

func (t *translator) valueText(rng hcl.Range, val cty.Value) string {
	if val.IsNull() || !val.IsKnown() {
		return ""
	}
	switch val.Type() {
	case cty.String:
		return val.AsString()
	case cty.Number:
		return val.AsBigFloat().Text('f', -1)
	case cty.Bool:
		if val.True() {
			return "1"
		}
		return "0"
	}
	t.errorf(rng, "Invalid expression value", "expected a string or number, got %s", val.Type().FriendlyName())
	return ""
}
