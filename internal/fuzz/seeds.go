package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

// addTestdataSeeds adds every *.lumen file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lumen" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addLanguageSeeds(f *testing.F) {
	for _, s := range []string{
		``,
		`page Home { state { count: number = 0 } <div>{count}</div> }`,
		`component A { props { x: string = "a", n?: number = -1 } <p class="x">{x}</p> }`,
		`layout L { <main>{children}</main> }`,
		`import { A, B } from "./a" import C from "c" import "x.css"`,
		`component A { event e(a) { if a > 1 { let b = a * 2 } else { return } for x in xs { log(x) } } <p/> }`,
		`component A { <ul>{xs.map(x => <li key={x}>{x}</li>)}</ul> }`,
		`component A { <p>{ok ? <b/> : <i>no</i>}</p> }`,
		`component A { <div><p>unclosed</div> }`,
		`component A { "unterminated`,
		`component A { /* open comment`,
		`component A { <a href="x" disabled {...}/> }`,
		"component A {\n\t<pre>  é 日本 </pre>\n}",
		`<<<<>>>>{{{{}}}}`,
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
