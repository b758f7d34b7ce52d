package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/token"
)

// peekDeclName returns the name token of the declaration at the cursor.
func (p *Parser) peekDeclName() token.Token {
	if p.at(token.KwExport) {
		return p.peekN(2)
	}
	return p.peekN(1)
}

// [export] (component|page|layout) Name { [props] [state] event* element }
func (p *Parser) parseDecl() (ast.Decl, error) {
	start := p.peek()
	exported := p.eat(token.KwExport)

	kwTok := p.peek()
	var decl ast.Decl
	switch kwTok.Kind {
	case token.KwComponent:
		decl = &ast.Component{}
	case token.KwPage:
		decl = &ast.Page{}
	case token.KwLayout:
		decl = &ast.Layout{}
	default:
		return nil, p.unexpected("'component', 'page' or 'layout'")
	}
	p.advance()

	nameTok, err := p.binding(decl.Kind().String() + " name")
	if err != nil {
		return nil, err
	}
	d := decl.Header()
	d.Name = nameTok.Text
	d.Exported = exported

	if p.at(token.LParen) {
		return nil, p.errorf(ErrInvalidStructure, p.peek(), "'{'",
			"%s %s: props are declared in a block, e.g. props { title: string }", decl.Kind(), d.Name)
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	names := newNameSet(decl)
	if err := p.parseSections(decl, names); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	d.Loc = p.loc(start)
	return decl, nil
}

type section uint8

const (
	secProps section = iota + 1
	secState
	secEvents
	secBody
)

func (s section) String() string {
	switch s {
	case secProps:
		return "props block"
	case secState:
		return "state block"
	case secEvents:
		return "events"
	default:
		return "markup body"
	}
}

// parseSections enforces the order props, state, events, body.
func (p *Parser) parseSections(decl ast.Decl, names *nameSet) error {
	d := decl.Header()
	var last section

	order := func(tok token.Token, s section) error {
		if s == last && s != secEvents {
			return p.errorf(ErrSectionOrder, tok, "", "%s %s: duplicate %s", decl.Kind(), d.Name, s)
		}
		if s < last {
			return p.errorf(ErrSectionOrder, tok, "", "%s %s: %s must come before the %s", decl.Kind(), d.Name, s, last)
		}
		last = s
		return nil
	}

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.KwProps:
			if err := order(tok, secProps); err != nil {
				return err
			}
			if decl.Kind() == ast.DeclPage {
				return p.errorf(ErrInvalidStructure, tok, "", "page %s: pages cannot declare props", d.Name)
			}
			props, err := p.parseProps(decl, names)
			if err != nil {
				return err
			}
			d.Props = props
		case token.KwState:
			if err := order(tok, secState); err != nil {
				return err
			}
			state, err := p.parseState(names)
			if err != nil {
				return err
			}
			d.State = state
		case token.KwEvent:
			if err := order(tok, secEvents); err != nil {
				return err
			}
			ev, err := p.parseEvent(names)
			if err != nil {
				return err
			}
			d.Events = append(d.Events, ev)
		case token.TagOpen:
			if last == secBody {
				return p.errorf(ErrInvalidStructure, tok, "'}'", "%s %s: exactly one root element is allowed", decl.Kind(), d.Name)
			}
			last = secBody
			body, err := p.parseElement()
			if err != nil {
				return err
			}
			d.Body = body
		case token.RBrace, token.EOF:
			if last != secBody {
				return p.errorf(ErrInvalidStructure, tok, "markup element", "%s %s: missing markup body", decl.Kind(), d.Name)
			}
			return nil
		default:
			if last == secBody {
				return p.unexpected("'}'")
			}
			return p.unexpected("'props', 'state', 'event' or markup element")
		}
	}
}

// props { name[?]: type [= default] [,|;] ... }
func (p *Parser) parseProps(decl ast.Decl, names *nameSet) ([]*ast.PropDecl, error) {
	p.advance() // props
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var props []*ast.PropDecl
	for !p.at(token.RBrace) {
		nameTok, err := p.binding("prop")
		if err != nil {
			return nil, err
		}
		if decl.Kind() == ast.DeclLayout && nameTok.Text == ast.ChildrenProp {
			return nil, p.errorf(ErrReservedName, nameTok, "", "layout %s: %q is reserved for the layout content", decl.Header().Name, ast.ChildrenProp)
		}
		if err := names.add(p, nameTok); err != nil {
			return nil, err
		}
		prop := &ast.PropDecl{Name: nameTok.Text}
		prop.Optional = p.eat(token.Question)
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		if prop.Type, err = p.parseType(); err != nil {
			return nil, err
		}
		if p.eat(token.Assign) {
			if prop.Default, err = p.parseDefault(nameTok.Text, prop.Type); err != nil {
				return nil, err
			}
		}
		prop.Loc = p.loc(nameTok)
		props = append(props, prop)
		p.eatSeparator()
	}
	p.advance() // }
	return props, nil
}

// state { name: type = default [,|;] ... }
func (p *Parser) parseState(names *nameSet) ([]*ast.StateDecl, error) {
	p.advance() // state
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var state []*ast.StateDecl
	for !p.at(token.RBrace) {
		nameTok, err := p.binding("state")
		if err != nil {
			return nil, err
		}
		if err := names.addState(p, nameTok); err != nil {
			return nil, err
		}
		st := &ast.StateDecl{Name: nameTok.Text}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		if st.Type, err = p.parseType(); err != nil {
			return nil, err
		}
		if !p.at(token.Assign) {
			return nil, p.errorf(ErrBadDefault, p.peek(), "'='", "state %q needs a default value", st.Name)
		}
		p.advance()
		if st.Default, err = p.parseDefault(nameTok.Text, st.Type); err != nil {
			return nil, err
		}
		st.Loc = p.loc(nameTok)
		state = append(state, st)
		p.eatSeparator()
	}
	p.advance() // }
	return state, nil
}

// event name(a, b) { statements }
func (p *Parser) parseEvent(names *nameSet) (*ast.EventDecl, error) {
	start := p.advance() // event
	nameTok, err := p.binding("event")
	if err != nil {
		return nil, err
	}
	if err := names.add(p, nameTok); err != nil {
		return nil, err
	}
	ev := &ast.EventDecl{Name: nameTok.Text}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if ev.Params, err = p.parseParamList(); err != nil {
		return nil, err
	}
	if ev.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	ev.Loc = p.loc(start)
	return ev, nil
}

// parseParamList reads `a, b)` after an opening parenthesis.
func (p *Parser) parseParamList() ([]string, error) {
	var params []string
	seen := make(map[string]struct{})
	for !p.at(token.RParen) {
		tok, err := p.binding("parameter")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[tok.Text]; dup {
			return nil, p.errorf(ErrDuplicateName, tok, "unique parameter name", "duplicate parameter %q", tok.Text)
		}
		seen[tok.Text] = struct{}{}
		params = append(params, tok.Text)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) eatSeparator() {
	if !p.eat(token.Comma) {
		p.eat(token.Semicolon)
	}
}

// nameSet tracks props, state, events and state setters of one
// declaration; they share a single scope in the generated function.
type nameSet struct {
	decl ast.Decl
	seen map[string]string // name -> what declared it
}

func newNameSet(decl ast.Decl) *nameSet {
	return &nameSet{decl: decl, seen: make(map[string]string)}
}

func (s *nameSet) add(p *Parser, tok token.Token) error {
	return s.claim(p, tok, tok.Text, "")
}

// addState claims the state name and the setter generated for it.
func (s *nameSet) addState(p *Parser, tok token.Token) error {
	if err := s.claim(p, tok, tok.Text, ""); err != nil {
		return err
	}
	return s.claim(p, tok, ast.SetterName(tok.Text), fmt.Sprintf("the setter of state %q", tok.Text))
}

// claim records name; setter is empty for names written in the source.
func (s *nameSet) claim(p *Parser, tok token.Token, name, setter string) error {
	prev, dup := s.seen[name]
	if !dup {
		s.seen[name] = setter
		return nil
	}
	where := fmt.Sprintf("in %s %s", s.decl.Kind(), s.decl.Header().Name)
	switch {
	case setter != "":
		return p.errorf(ErrDuplicateName, tok, "unique name", "%s is named %q, which is already declared %s", setter, name, where)
	case prev != "":
		return p.errorf(ErrDuplicateName, tok, "unique name", "name %q collides with %s %s", name, prev, where)
	}
	return p.errorf(ErrDuplicateName, tok, "unique name", "duplicate name %q %s", name, where)
}
