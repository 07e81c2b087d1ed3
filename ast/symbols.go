package ast

import "sort"

// SymbolSet is the result of Symbols: the set of every functor, predicate,
// type and distinct-object name reachable from a node, excluding variable
// names.
type SymbolSet map[string]struct{}

// Contains reports whether sym is present in the set.
func (s SymbolSet) Contains(sym string) bool {
	_, ok := s[sym]
	return ok
}

// Slice returns the set's members in sorted order, for deterministic
// comparisons in tests.
func (s SymbolSet) Slice() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Symbols computes the smallest set containing every functor, predicate,
// type, distinct object and typing-atom reachable from n. Typing-atoms are
// covered implicitly: a TypingExpr's Name is itself a *FunctionTerm (or
// similar atom), which contributes its functor the same way any other
// application does. Variable names never appear in the result.
func Symbols(n Node) SymbolSet {
	s := make(SymbolSet)
	Walk(n, func(node Node) bool {
		switch v := node.(type) {
		case *FunctionTerm:
			s[v.Functor] = struct{}{}
		case *DistinctObjectExpr:
			s[formatDistinctObject(v.Value)] = struct{}{}
		case *NonclassicalPolyaryFormula:
			s[v.Op.canonicalName()] = struct{}{}
		}
		return true
	})
	return s
}
