package ast

import (
	"math/big"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOptions configures cmp.Equal to compare ASTs structurally, ignoring
// source positions (which legitimately differ after a round trip through
// the serializer, since re-parsed text has different line/column positions)
// and ignoring the mutable Meta side-map entirely.
var equalOptions = []cmp.Option{
	cmpopts.IgnoreTypes(Token{}, (*Token)(nil), Position{}, (*Meta)(nil)),
	cmp.Exporter(func(t reflect.Type) bool { return t.PkgPath() == "github.com/leoprover/go-tptp/ast" }),
	cmp.Comparer(func(x, y *big.Int) bool {
		if x == nil || y == nil {
			return x == y
		}
		return x.Cmp(y) == 0
	}),
}

// Equal reports whether a and b are structurally equal under the rules
// above: parse(pretty(x)) must be Equal to x.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b, equalOptions...)
}

// Diff returns a human-readable report of the structural differences
// between a and b, using the same comparison rules as Equal. Returns ""
// when a and b are Equal.
func Diff(a, b Node) string {
	return cmp.Diff(a, b, equalOptions...)
}
