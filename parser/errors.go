package parser

import "github.com/leoprover/go-tptp/reporter"

// wrongTokenErr reports that t was read where expected was required.
func wrongTokenErr(t Token, expected string) error {
	if t.Kind == EOF {
		return reporter.UnexpectedEOF(t.Pos, expected)
	}
	return reporter.WrongToken(t.Pos, expected, t.Kind.String(), t.Text)
}

// constraintErr reports a violated grammar constraint at t's position,
// such as a quantifier or unary-chain appearing where a <thf_unitary_term>
// is required.
func constraintErr(t Token, message string) error {
	return reporter.Constraint(t.Pos, message)
}
