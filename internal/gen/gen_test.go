package gen_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/sebdah/goldie/v2"

	"github.com/tuplekit/tuplejoin/internal/gen"
)

func TestFilesGolden(t *testing.T) {
	files, err := gen.Files(gen.ModulePath, 2)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(files), 3))

	g := goldie.New(t)
	for _, f := range files {
		g.Assert(t, strings.TrimSuffix(path.Base(f.Name), ".go"), f.Data)
	}
}

// The join table must contain exactly one Join/Split pair per (i, j)
// cell: no gaps, no duplicates.
func TestJoinTableCoverage(t *testing.T) {
	files, err := gen.Files(gen.ModulePath, gen.DefaultMax)
	qt.Assert(t, qt.IsNil(err))

	joins := declNames(t, fileNamed(t, files, "join_gen.go"), "Join_")
	splits := declNames(t, fileNamed(t, files, "join_gen.go"), "Split_")
	n := gen.DefaultMax + 1
	qt.Assert(t, qt.Equals(len(joins), n*n))
	qt.Assert(t, qt.Equals(len(splits), n*n))
	for i := 0; i <= gen.DefaultMax; i++ {
		for j := 0; j <= gen.DefaultMax; j++ {
			qt.Assert(t, qt.IsTrue(joins[fmt.Sprintf("Join_%d_%d", i, j)]), qt.Commentf("missing Join_%d_%d", i, j))
			qt.Assert(t, qt.IsTrue(splits[fmt.Sprintf("Split_%d_%d", i, j)]), qt.Commentf("missing Split_%d_%d", i, j))
		}
	}
}

func TestAppendCoverage(t *testing.T) {
	files, err := gen.Files(gen.ModulePath, gen.DefaultMax)
	qt.Assert(t, qt.IsNil(err))

	pushes := declNames(t, fileNamed(t, files, "append_gen.go"), "Push_")
	pops := declNames(t, fileNamed(t, files, "append_gen.go"), "Pop_")
	qt.Assert(t, qt.Equals(len(pushes), gen.DefaultMax+1))
	qt.Assert(t, qt.Equals(len(pops), gen.DefaultMax+1))
	for i := 0; i <= gen.DefaultMax; i++ {
		qt.Assert(t, qt.IsTrue(pushes[fmt.Sprintf("Push_%d", i)]))
		qt.Assert(t, qt.IsTrue(pops[fmt.Sprintf("Pop_%d", i)]))
	}
}

func TestTupleTypeCoverage(t *testing.T) {
	files, err := gen.Files(gen.ModulePath, gen.DefaultMax)
	qt.Assert(t, qt.IsNil(err))

	f := parseFile(t, fileNamed(t, files, "tuple/tuple_gen.go"))
	types := map[string]bool{}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			name := spec.(*ast.TypeSpec).Name.Name
			qt.Assert(t, qt.IsFalse(types[name]), qt.Commentf("duplicate type %s", name))
			types[name] = true
		}
	}
	qt.Assert(t, qt.Equals(len(types), 2*gen.DefaultMax+1))
	for k := 0; k <= 2*gen.DefaultMax; k++ {
		qt.Assert(t, qt.IsTrue(types[fmt.Sprintf("T%d", k)]), qt.Commentf("missing T%d", k))
	}
}

// The checked-in generated files must match what the generator
// produces for the default arity limit.
func TestGeneratedFilesUpToDate(t *testing.T) {
	files, err := gen.Files(gen.ModulePath, gen.DefaultMax)
	qt.Assert(t, qt.IsNil(err))
	for _, f := range files {
		want, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(f.Name)))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(string(f.Data), string(want)), qt.Commentf("%s is stale; run go generate", f.Name))
	}
}

func TestArityLimit(t *testing.T) {
	_, err := gen.Files(gen.ModulePath, 0)
	qt.Assert(t, qt.ErrorMatches(err, `per-operand arity limit 0 out of range 1\.\.13`))

	_, err = gen.Files(gen.ModulePath, 14)
	qt.Assert(t, qt.ErrorMatches(err, `per-operand arity limit 14 out of range 1\.\.13`))

	_, err = gen.Files(gen.ModulePath, 13)
	qt.Assert(t, qt.IsNil(err))

	_, err = gen.Files(gen.ModulePath, 1)
	qt.Assert(t, qt.IsNil(err))
}

func TestDeterministic(t *testing.T) {
	a, err := gen.Files(gen.ModulePath, 3)
	qt.Assert(t, qt.IsNil(err))
	b, err := gen.Files(gen.ModulePath, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(a, b))
}

func fileNamed(t *testing.T, files []gen.File, name string) gen.File {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no generated file named %s", name)
	return gen.File{}
}

func parseFile(t *testing.T, f gen.File) *ast.File {
	t.Helper()
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, f.Name, f.Data, parser.SkipObjectResolution)
	qt.Assert(t, qt.IsNil(err))
	return parsed
}

// declNames returns the set of function names with the given prefix,
// failing the test on duplicates.
func declNames(t *testing.T, f gen.File, prefix string) map[string]bool {
	t.Helper()
	names := map[string]bool{}
	for _, decl := range parseFile(t, f).Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || !strings.HasPrefix(fd.Name.Name, prefix) {
			continue
		}
		qt.Assert(t, qt.IsFalse(names[fd.Name.Name]), qt.Commentf("duplicate %s", fd.Name.Name))
		names[fd.Name.Name] = true
	}
	return names
}
