package ast

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// BinaryOp is a binary operator.
type BinaryOp uint8

const (
	OpOr BinaryOp = iota + 1
	OpAnd
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binaryOpText = [...]string{
	OpOr:    "||",
	OpAnd:   "&&",
	OpEq:    "==",
	OpNotEq: "!=",
	OpLt:    "<",
	OpLtEq:  "<=",
	OpGt:    ">",
	OpGtEq:  ">=",
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpDiv:   "/",
	OpMod:   "%",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) && binaryOpText[op] != "" {
		return binaryOpText[op]
	}
	return "?"
}

// Prec returns the binding power of op; higher binds tighter.
func (op BinaryOp) Prec() int {
	switch op {
	case OpOr:
		return 1
	case OpAnd:
		return 2
	case OpEq, OpNotEq:
		return 3
	case OpLt, OpLtEq, OpGt, OpGtEq:
		return 4
	case OpAdd, OpSub:
		return 5
	case OpMul, OpDiv, OpMod:
		return 6
	default:
		return 0
	}
}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	OpNot UnaryOp = iota + 1
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

type (
	Ident struct {
		Loc
		Name string
	}

	// StringLit holds the decoded value; quoting is the printer's job.
	StringLit struct {
		Loc
		Value string
	}

	// NumberLit keeps the source spelling.
	NumberLit struct {
		Loc
		Raw string
	}

	// BoolLit is true/false. Implicit marks a bare attribute.
	BoolLit struct {
		Loc
		Value    bool
		Implicit bool
	}

	BinaryExpr struct {
		Loc
		Op   BinaryOp
		X, Y Expr
	}

	UnaryExpr struct {
		Loc
		Op UnaryOp
		X  Expr
	}

	CallExpr struct {
		Loc
		Fun  Expr
		Args []Expr
	}

	// MemberExpr is x.Name.
	MemberExpr struct {
		Loc
		X    Expr
		Name string
	}

	// IndexExpr is x[Index].
	IndexExpr struct {
		Loc
		X, Index Expr
	}

	ArrayLit struct {
		Loc
		Elems []Expr
	}

	ObjectLit struct {
		Loc
		Fields []*ObjectField
	}

	// ArrowFunc has either an expression Body or a statement Block.
	ArrowFunc struct {
		Loc
		Params []string
		Body   Expr
		Block  []Stmt
	}

	// CondExpr is cond ? then : else.
	CondExpr struct {
		Loc
		Cond, Then, Else Expr
	}

	// ElementExpr is markup in expression position.
	ElementExpr struct {
		Loc
		Elem *Element
	}
)

// ObjectField is `key: value`; Shorthand marks `{ key }`.
type ObjectField struct {
	Loc
	Key       string
	Value     Expr
	Shorthand bool
}

func (*Ident) exprNode()       {}
func (*StringLit) exprNode()   {}
func (*NumberLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*BinaryExpr) exprNode()  {}
func (*UnaryExpr) exprNode()   {}
func (*CallExpr) exprNode()    {}
func (*MemberExpr) exprNode()  {}
func (*IndexExpr) exprNode()   {}
func (*ArrayLit) exprNode()    {}
func (*ObjectLit) exprNode()   {}
func (*ArrowFunc) exprNode()   {}
func (*CondExpr) exprNode()    {}
func (*ElementExpr) exprNode() {}

// IsLiteral reports whether e is a literal value: a string, number or
// boolean, a negated number, or an array/object built only from literals.
func IsLiteral(e Expr) bool {
	switch e := e.(type) {
	case *StringLit, *NumberLit, *BoolLit:
		return true
	case *UnaryExpr:
		_, ok := e.X.(*NumberLit)
		return ok && e.Op == OpNeg
	case *ArrayLit:
		for _, el := range e.Elems {
			if !IsLiteral(el) {
				return false
			}
		}
		return true
	case *ObjectLit:
		for _, f := range e.Fields {
			if f.Shorthand || !IsLiteral(f.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
