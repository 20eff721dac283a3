// Package matcher provides a simple "rule" language for filtering
// addresses. The matcher library is based on
// github.com/Knetic/govaluate
package matcher

import (
	"encoding/hex"
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/nextbac/bacaddr/core/addr"
)

type (
	// Matcher is an address matcher
	Matcher struct {
		// expr holds the pre-compiled expression
		expr *govaluate.EvaluableExpression
	}

	// ExprFunc can be used to expose functions to matcher expressions
	ExprFunc func(args ...interface{}) (interface{}, error)
)

// New compiles the given expression into an address matcher. An empty
// expression matches every address. Additional functions may be
// exposed to the expression via fns.
func New(exprStr string, fns ...map[string]ExprFunc) (*Matcher, error) {
	if exprStr == "" {
		return &Matcher{}, nil
	}

	functions := make(map[string]govaluate.ExpressionFunction)

	for _, m := range fns {
		for name, fn := range m {
			functions[name] = govaluate.ExpressionFunction(fn)
		}
	}

	expr, err := govaluate.NewEvaluableExpressionWithFunctions(exprStr, functions)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		expr: expr,
	}, nil
}

// Match evaluates the expression stored in the matcher against the
// given address
func (m *Matcher) Match(a addr.Address) (bool, error) {
	if m.expr == nil {
		return true, nil
	}

	result, err := m.expr.Evaluate(Params(a))
	if err != nil {
		return false, err
	}

	if b, ok := result.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("expression did not evaluate to a boolean. instead, got: %v", result)
}

// Params returns the parameter map an address is exposed as to
// matcher expressions. Absent components are mapped to -1 (network,
// length) or the empty string (mac) so expressions don't need to
// guard against missing variables.
func Params(a addr.Address) map[string]interface{} {
	params := map[string]interface{}{
		"kind":      a.Kind().String(),
		"address":   a.String(),
		"broadcast": a.IsBroadcast(),
		"remote":    a.IsRemote(),
		"network":   float64(-1),
		"length":    float64(-1),
		"mac":       "",
	}

	if network, ok := a.Network(); ok {
		params["network"] = float64(network)
	}

	if mac, ok := a.Bytes(); ok {
		params["length"] = float64(len(mac))
		params["mac"] = hex.EncodeToString(mac)
	}

	return params
}
