// Package noosexit reports direct os.Exit calls in main.main.
//
// The tracker terminates through its logger so deferred syncs and the
// final error are reported; a bare os.Exit in main skips both.
package noosexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "noosexit",
	Doc:      "forbid direct os.Exit in main.main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fd := n.(*ast.FuncDecl)
		if fd.Recv != nil || fd.Name.Name != "main" || fd.Body == nil || skipFile(pass, fd) {
			return
		}

		ast.Inspect(fd.Body, func(n ast.Node) bool {
			// closures run later, not as part of main's own exit path
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if ok && isOSExit(pass, call) {
				pass.Reportf(call.Pos(), "do not call os.Exit inside main; return the error or use the logger's Fatal")
			}
			return true
		})
	})

	return nil, nil
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

// skipFile ignores generated files, including the test main built by go test.
func skipFile(pass *analysis.Pass, fd *ast.FuncDecl) bool {
	for _, f := range pass.Files {
		if f.Pos() <= fd.Pos() && fd.End() <= f.End() {
			name := pass.Fset.Position(f.Pos()).Filename
			return strings.Contains(name, "go-build") || ast.IsGenerated(f)
		}
	}
	return false
}
