package expr

import (
	"errors"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Clog2Func computes the ceiling of log2, as $clog2 does in SystemVerilog.
// Values of 1 or less yield 0. Infinite values are an error.
var Clog2Func = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "num", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		f := args[0].AsBigFloat()
		if f.IsInf() {
			return cty.NilVal, errors.New("clog2 of an infinite value")
		}
		n, _ := f.Int(nil)
		if n.Cmp(big.NewInt(1)) <= 0 {
			return cty.Zero, nil
		}
		n.Sub(n, big.NewInt(1))
		return cty.NumberIntVal(int64(n.BitLen())), nil
	},
})

// functions returns the function table available to every expression.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"clog2": Clog2Func,
		"pow":   stdlib.PowFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
	}
}
