package ir

// Node represents a node of a parsed RSQL expression tree.
//
// This is a sealed interface - only Comparison and Logic implement it.
// Translators switch exhaustively over the two variants:
//
//	switch n := node.(type) {
//	case Comparison:
//	    // leaf predicate
//	case Logic:
//	    // binary combinator
//	}
type Node interface {
	exprNode() // Marker method - seals interface to this package
}

// LogicOp is the combinator joining the two operands of a Logic node.
type LogicOp string

const (
	// And requires both operands to hold.
	And LogicOp = "AND"

	// Or requires either operand to hold.
	Or LogicOp = "OR"

	// Not negates a single filter. It never appears on a Logic node but is
	// one of the three combinator keys of a Filter.
	Not LogicOp = "NOT"
)

// Comparison operator tokens understood by the default registry.
const (
	OpEqual          = "=="
	OpNotEqual       = "!="
	OpGreater        = ">"
	OpGreaterVerbose = "=gt="
	OpGreaterEq      = ">="
	OpGreaterEqVerb  = "=ge="
	OpLess           = "<"
	OpLessVerbose    = "=lt="
	OpLessEq         = "<="
	OpLessEqVerbose  = "=le="
	OpIn             = "=in="
	OpOut            = "=out="
)

// Comparison tests one selector against one operator and argument.
//
// Selector is a dot-delimited path such as "address.city" or
// "posts.some.title". Value holds a single argument; Values holds the
// members of a parenthesised argument group such as (a,b,c). Parsers set
// exactly one of them.
type Comparison struct {
	Selector string
	Operator string
	Value    string
	Values   []string
}

func (Comparison) exprNode() {}

// IsGroup reports whether the argument was written as a value group.
func (c Comparison) IsGroup() bool {
	return c.Values != nil
}

// Logic combines two sub-expressions. Parsers build chains of the same
// combinator left-associatively, so a;b;c becomes Logic(Logic(a,b),c).
type Logic struct {
	Operator LogicOp
	Left     Node
	Right    Node
}

func (Logic) exprNode() {}
