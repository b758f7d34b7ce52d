// Package dag orders the source files of a build by their relative
// imports and reports cycles between them.
package dag

import (
	"path"
	"sort"
	"strings"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// NodeID identifies a unit in an Index.
type NodeID uint32

// Unit is one compiled source file.
type Unit struct {
	Path     string   // slash-separated, relative to the source root
	Imports  []string // module specifiers as written
	Span     source.Span
	Reporter diag.Reporter
	Broken   bool // the file failed to compile
	FirstErr *diag.Diagnostic
}

type Index struct {
	NameToID map[string]NodeID
	IDToName []string
}

// BuildIndex assigns IDs to the unit paths in sorted order.
func BuildIndex(units []Unit) Index {
	uniq := make(map[string]struct{}, len(units))
	for _, u := range units {
		if u.Path != "" {
			uniq[u.Path] = struct{}{}
		}
	}
	paths := make([]string, 0, len(uniq))
	for p := range uniq {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	nameToID := make(map[string]NodeID, len(paths))
	for i, p := range paths {
		nameToID[p] = NodeID(i)
	}
	return Index{NameToID: nameToID, IDToName: paths}
}

// ResolveImport maps spec, imported from the unit at from, to a unit
// path. Only relative specifiers resolve; a specifier without an
// extension gets ext appended, one with another extension is foreign.
func ResolveImport(from, spec, ext string) (string, bool) {
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		return "", false
	}
	p := path.Join(path.Dir(from), spec)
	switch path.Ext(p) {
	case "":
		p += ext
	case ext:
	default:
		return "", false
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}
