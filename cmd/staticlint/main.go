// Package main запускает multichecker.
//
// Он включает:
//   - стандартные анализаторы go/analysis/passes (shadow, structtag, nilness, printf, httpresponse)
//   - все SA-анализаторы staticcheck
//   - S1000 из simple и U1000 из unused
//   - публичный анализатор bodyclose
//   - собственный анализатор noexit (запрещает os.Exit в main)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/MediaViewer/cmd/staticlint/noexit"
)

// simpleChecks проверки из набора simple, которые тоже включаем.
var simpleChecks = map[string]bool{
	"S1000": true, // select с одним case
}

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		httpresponse.Analyzer,
		bodyclose.Analyzer,
		noexit.NewAnalyzer(),
		unused.Analyzer.Analyzer, // U1000
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, a := range simple.Analyzers {
		if simpleChecks[a.Analyzer.Name] {
			list = append(list, a.Analyzer)
		}
	}
	return list
}
