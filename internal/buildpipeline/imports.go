package buildpipeline

import (
	"lumen/internal/diag"
	"lumen/internal/driver"
	"lumen/internal/project/dag"
	"lumen/internal/source"
)

// checkImports links the compiled files through their relative imports,
// adds cycle and broken-dependency warnings to the files' bags, and
// returns the indices of results with dependencies first. Files on
// cycles come last in path order.
func checkImports(results []driver.DirResult) []int {
	units := make([]dag.Unit, len(results))
	for i, dr := range results {
		u := dag.Unit{
			Path:   dr.Path,
			Span:   source.Span{File: dr.FileID},
			Broken: dr.Err != nil,
		}
		if dr.Bag != nil {
			u.Reporter = diag.BagReporter{Bag: dr.Bag}
			u.FirstErr = firstError(dr.Bag)
		}
		if dr.Err == nil && dr.Result != nil {
			u.Imports = dr.Result.Imports
		}
		units[i] = u
	}

	idx := dag.BuildIndex(units)
	g, slots := dag.BuildGraph(idx, units, driver.SourceExt)
	topo := dag.ToposortKahn(g)
	dag.ReportCycles(idx, g, slots, topo)
	dag.ReportBrokenDeps(idx, g, slots)

	byPath := make(map[string]int, len(results))
	for i, dr := range results {
		byPath[dr.Path] = i
	}
	order := make([]int, 0, len(results))
	for _, ids := range [][]dag.NodeID{topo.Order, topo.Cycles} {
		for _, id := range ids {
			order = append(order, byPath[idx.IDToName[id]])
		}
	}
	return order
}

func firstError(bag *diag.Bag) *diag.Diagnostic {
	for _, d := range bag.Items() {
		if d.IsError() {
			return &d
		}
	}
	return nil
}
