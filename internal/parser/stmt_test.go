package parser_test

import (
	"testing"

	"lumen/internal/ast"
)

func TestEventStatements(t *testing.T) {
	stmts := eventBody(t, `
    let next = count + 1;
    count = next
    total += e.amount
    items[0] -= 1
    if next > 10 {
      reset()
    } else if next > 5 {
      warn("half")
    } else {
      return
    }
    for item in items {
      log(item)
    }
    return next
`)
	if len(stmts) != 7 {
		t.Fatalf("statements = %d, want 7", len(stmts))
	}
	if let, ok := stmts[0].(*ast.LetStmt); !ok || let.Name != "next" {
		t.Fatalf("stmt 0 = %#v", stmts[0])
	}
	as := stmts[1].(*ast.AssignStmt)
	if as.Op != ast.Assign || as.Target.(*ast.Ident).Name != "count" {
		t.Fatalf("stmt 1 = %#v", as)
	}
	if as := stmts[2].(*ast.AssignStmt); as.Op != ast.AddAssign {
		t.Fatalf("stmt 2 op = %v", as.Op)
	}
	if as := stmts[3].(*ast.AssignStmt); as.Op != ast.SubAssign {
		t.Fatalf("stmt 3 op = %v", as.Op)
	} else if _, ok := as.Target.(*ast.IndexExpr); !ok {
		t.Fatalf("stmt 3 target = %T", as.Target)
	}

	ifs := stmts[4].(*ast.IfStmt)
	if len(ifs.Then) != 1 || len(ifs.Else) != 1 {
		t.Fatalf("if shape: then=%d else=%d", len(ifs.Then), len(ifs.Else))
	}
	elif, ok := ifs.Else[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("else branch = %T, want *ast.IfStmt", ifs.Else[0])
	}
	if ret := elif.Else[0].(*ast.ReturnStmt); ret.Value != nil {
		t.Fatal("bare return must have nil value")
	}

	fs := stmts[5].(*ast.ForStmt)
	if fs.Var != "item" || fs.Iter.(*ast.Ident).Name != "items" || len(fs.Body) != 1 {
		t.Fatalf("for = %#v", fs)
	}
	if ret := stmts[6].(*ast.ReturnStmt); ret.Value == nil {
		t.Fatal("return value missing")
	}
}

func TestInvalidAssignTarget(t *testing.T) {
	perr := parseErr(t, `component C { event e() { f() = 1 } <div/> }`)
	expectMsg(t, perr, "cannot assign to")
}

func TestUnterminatedEventBody(t *testing.T) {
	perr := parseErr(t, `component C { event e() { a = 1 `)
	if perr.Found != "end of file" {
		t.Fatalf("found = %q", perr.Found)
	}
}

func TestDuplicateParams(t *testing.T) {
	expectMsg(t, parseErr(t, `component C { event e(a, a) {} <div/> }`), `duplicate parameter "a"`)
}
