package dag

import (
	"fmt"
	"slices"
	"strings"

	"lumen/internal/diag"
)

// Graph has an edge from each imported unit to its importers, so a
// topological order lists dependencies first.
type Graph struct {
	Edges [][]NodeID // Edges[from] = []to
	Indeg []int
}

// Slot is the unit behind a NodeID after BuildGraph.
type Slot struct {
	Unit
	Present bool
}

// BuildGraph links units through their resolvable imports. Imports of
// files outside the index are skipped; a file importing itself is
// reported and skipped.
func BuildGraph(idx Index, units []Unit, ext string) (Graph, []Slot) {
	n := len(idx.IDToName)
	g := Graph{
		Edges: make([][]NodeID, n),
		Indeg: make([]int, n),
	}
	slots := make([]Slot, n)
	for _, u := range units {
		id, ok := idx.NameToID[u.Path]
		if !ok || slots[id].Present {
			continue
		}
		slots[id] = Slot{Unit: u, Present: true}
	}

	for to := range slots {
		slot := &slots[to]
		if !slot.Present {
			continue
		}
		seen := make(map[NodeID]struct{}, len(slot.Imports))
		for _, spec := range slot.Imports {
			target, ok := ResolveImport(slot.Path, spec, ext)
			if !ok {
				continue
			}
			from, ok := idx.NameToID[target]
			if !ok {
				continue
			}
			if int(from) == to {
				report(slot.Reporter, diag.ProjSelfImport, slot, fmt.Sprintf("%s imports itself", slot.Path), nil)
				continue
			}
			if _, dup := seen[from]; dup {
				continue
			}
			seen[from] = struct{}{}
			g.Edges[from] = append(g.Edges[from], NodeID(to))
			g.Indeg[to]++
		}
	}
	for i := range g.Edges {
		slices.Sort(g.Edges[i])
	}
	return g, slots
}

// ReportCycles warns every unit that takes part in the cycle found by
// CyclePath.
func ReportCycles(idx Index, g Graph, slots []Slot, topo *Topo) {
	cycle := CyclePath(g, topo)
	if len(cycle) == 0 {
		return
	}
	names := make([]string, len(cycle))
	for i, id := range cycle {
		names[i] = idx.IDToName[id]
	}
	summary := strings.Join(names, " -> ")
	for _, id := range cycle[:len(cycle)-1] {
		slot := &slots[id]
		report(slot.Reporter, diag.ProjImportCycle, slot, "import cycle: "+summary, nil)
	}
}

// ReportBrokenDeps warns importers of units that failed to compile.
func ReportBrokenDeps(idx Index, g Graph, slots []Slot) {
	for from, tos := range g.Edges {
		dep := &slots[from]
		if !dep.Present || !dep.Broken {
			continue
		}
		var notes []diag.Note
		if dep.FirstErr != nil {
			notes = append(notes, diag.Note{
				Span: dep.FirstErr.Primary,
				Msg:  "first error in dependency: " + dep.FirstErr.Message,
			})
		}
		for _, to := range tos {
			slot := &slots[to]
			report(slot.Reporter, diag.ProjDependencyFailed, slot,
				fmt.Sprintf("imported file %s has errors", idx.IDToName[from]), notes)
		}
	}
}

func report(r diag.Reporter, code diag.Code, slot *Slot, msg string, notes []diag.Note) {
	if r == nil {
		return
	}
	b := diag.ReportWarning(r, code, slot.Span, msg)
	for _, n := range notes {
		b.WithNote(n.Span, n.Msg)
	}
	b.Emit()
}
