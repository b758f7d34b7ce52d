package ast

// Stmt is a statement inside an event or arrow function body.
type Stmt interface {
	Node
	stmtNode()
}

// AssignOp is =, += or -=.
type AssignOp uint8

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
)

func (op AssignOp) String() string {
	switch op {
	case AddAssign:
		return "+="
	case SubAssign:
		return "-="
	default:
		return "="
	}
}

// Binary returns the binary operator folded into a compound assignment.
func (op AssignOp) Binary() (BinaryOp, bool) {
	switch op {
	case AddAssign:
		return OpAdd, true
	case SubAssign:
		return OpSub, true
	default:
		return 0, false
	}
}

type (
	ExprStmt struct {
		Loc
		X Expr
	}

	// AssignStmt targets an *Ident, *MemberExpr or *IndexExpr.
	AssignStmt struct {
		Loc
		Target Expr
		Op     AssignOp
		Value  Expr
	}

	LetStmt struct {
		Loc
		Name  string
		Value Expr
	}

	// IfStmt: an `else if` chain is an Else holding a single *IfStmt.
	IfStmt struct {
		Loc
		Cond Expr
		Then []Stmt
		Else []Stmt
	}

	// ForStmt is `for Var in Iter { Body }`.
	ForStmt struct {
		Loc
		Var  string
		Iter Expr
		Body []Stmt
	}

	// ReturnStmt may have a nil Value.
	ReturnStmt struct {
		Loc
		Value Expr
	}
)

func (*ExprStmt) stmtNode()   {}
func (*AssignStmt) stmtNode() {}
func (*LetStmt) stmtNode()    {}
func (*IfStmt) stmtNode()     {}
func (*ForStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
