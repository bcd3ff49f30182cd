// Package gen emits the per-arity tuple, join and append source files.
//
// The generated join table covers every pair of operand arities (i, j)
// with 0 <= i <= max and 0 <= j <= max: exactly one Join_i_j/Split_i_j
// pair per cell, no gaps and no duplicates. Every body is derived
// mechanically from the positional contract: output position k reads
// left position k when k < i, and right position k-i otherwise.
//
// Element positions are named by single letters, so a per-operand
// limit of 13 uses the whole alphabet for the widest outputs.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/pkg/errors"
)

// ModulePath is the import path of the module root. The generated join
// and append files import ModulePath/tuple.
const ModulePath = "github.com/tuplekit/tuplejoin"

// DefaultMax is the per-operand arity limit of the checked-in files.
// Both operands may reach it independently, so generated outputs go up
// to arity 2*DefaultMax.
const DefaultMax = 13

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const header = "// Code generated by tuplegen; DO NOT EDIT.\n\n"

// A File is a single generated source file. Name is relative to the
// module root.
type File struct {
	Name string
	Data []byte
}

// Files returns the full set of generated files for the given
// per-operand arity limit. It fails if max is below 1 or if combined
// outputs would exhaust the alphabet used to name element positions.
func Files(pkgPath string, max int) ([]File, error) {
	if max < 1 || 2*max > len(alphabet) {
		return nil, errors.Errorf("per-operand arity limit %d out of range 1..%d", max, len(alphabet)/2)
	}
	files := []File{
		{Name: "tuple/tuple_gen.go", Data: Tuples(2 * max)},
		{Name: "join_gen.go", Data: Joins(pkgPath, max)},
		{Name: "append_gen.go", Data: Appends(pkgPath, max)},
	}
	for i, f := range files {
		data, err := format.Source(f.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s does not parse", f.Name)
		}
		files[i].Data = data
	}
	return files, nil
}

// Tuples emits the tuple package: types T0..Tn with constructors and
// Unpack methods.
func Tuples(n int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package tuple\n")
	buf.WriteString("\n// T0 is the empty tuple.\ntype T0 struct{}\n")
	buf.WriteString("\n// New0 returns the empty tuple.\nfunc New0() T0 {\n\treturn T0{}\n}\n")
	for k := 1; k <= n; k++ {
		params := letters(0, k)
		list := strings.Join(params, ", ")
		what := "values"
		if k == 1 {
			what = "value"
		}
		fmt.Fprintf(&buf, "\n// T%d holds %s.\n", k, values(k))
		fmt.Fprintf(&buf, "type T%d[%s any] struct {\n", k, list)
		for _, p := range params {
			fmt.Fprintf(&buf, "\t%s %s\n", p, p)
		}
		buf.WriteString("}\n")
		args := make([]string, k)
		elems := make([]string, k)
		rets := make([]string, k)
		for m, p := range params {
			args[m] = strings.ToLower(p) + " " + p
			elems[m] = p + ": " + strings.ToLower(p)
			rets[m] = "t." + p
		}
		fmt.Fprintf(&buf, "\n// New%d returns a T%d holding the given %s.\n", k, k, what)
		fmt.Fprintf(&buf, "func New%d[%s any](%s) T%d[%s] {\n", k, list, strings.Join(args, ", "), k, list)
		fmt.Fprintf(&buf, "\treturn T%d[%s]{%s}\n}\n", k, list, strings.Join(elems, ", "))
		ret := params[0]
		if k > 1 {
			ret = "(" + list + ")"
		}
		fmt.Fprintf(&buf, "\n// Unpack returns the %s held in t.\n", what)
		fmt.Fprintf(&buf, "func (t T%d[%s]) Unpack() %s {\n\treturn %s\n}\n", k, list, ret, strings.Join(rets, ", "))
	}
	return buf.Bytes()
}

// Joins emits the join relation table: one Join_i_j/Split_i_j pair for
// every (i, j) in 0..max x 0..max.
func Joins(pkgPath string, max int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package tuplejoin\n\nimport %q\n", pkgPath+"/tuple")
	for i := 0; i <= max; i++ {
		for j := 0; j <= max; j++ {
			writeJoin(&buf, i, j)
			writeSplit(&buf, i, j)
		}
	}
	return buf.Bytes()
}

func writeJoin(buf *bytes.Buffer, i, j int) {
	lt := tupleType(i, letters(0, i))
	rt := tupleType(j, letters(i, j))
	ot := tupleType(i+j, letters(0, i+j))
	fmt.Fprintf(buf, "\n// Join_%d_%d concatenates %s and %s into %s.\n", i, j, phrase(i), phrase(j), phrase(i+j))
	fmt.Fprintf(buf, "func Join_%d_%d%s(left %s, right %s) %s {\n", i, j, typeParams(i+j), lt, rt, ot)
	switch {
	case j == 0:
		buf.WriteString("\treturn left\n")
	case i == 0:
		buf.WriteString("\treturn right\n")
	default:
		elems := make([]string, i+j)
		for k := 0; k < i+j; k++ {
			if k < i {
				elems[k] = letter(k) + ": left." + letter(k)
			} else {
				elems[k] = letter(k) + ": right." + letter(k-i)
			}
		}
		fmt.Fprintf(buf, "\treturn %s{%s}\n", ot, strings.Join(elems, ", "))
	}
	buf.WriteString("}\n")
}

func writeSplit(buf *bytes.Buffer, i, j int) {
	lt := tupleType(i, letters(0, i))
	rt := tupleType(j, letters(i, j))
	ot := tupleType(i+j, letters(0, i+j))
	fmt.Fprintf(buf, "\n// Split_%d_%d splits %s into %s and %s.\n", i, j, phrase(i+j), phrase(i), phrase(j))
	fmt.Fprintf(buf, "func Split_%d_%d%s(t %s) (%s, %s) {\n", i, j, typeParams(i+j), ot, lt, rt)
	switch {
	case i == 0 && j == 0:
		buf.WriteString("\treturn t, t\n")
	case i == 0:
		buf.WriteString("\treturn tuple.T0{}, t\n")
	case j == 0:
		buf.WriteString("\treturn t, tuple.T0{}\n")
	default:
		le := make([]string, i)
		for k := 0; k < i; k++ {
			le[k] = letter(k) + ": t." + letter(k)
		}
		re := make([]string, j)
		for m := 0; m < j; m++ {
			re[m] = letter(m) + ": t." + letter(i+m)
		}
		fmt.Fprintf(buf, "\treturn %s{%s}, %s{%s}\n", lt, strings.Join(le, ", "), rt, strings.Join(re, ", "))
	}
	buf.WriteString("}\n")
}

// Appends emits the append layer: Push_i/Pop_i for i in 0..max, each a
// thin derivation over the join table with a fixed singleton operand.
func Appends(pkgPath string, max int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package tuplejoin\n\nimport %q\n", pkgPath+"/tuple")
	for i := 0; i <= max; i++ {
		pt := tupleType(i, letters(0, i))
		ot := tupleType(i+1, letters(0, i+1))
		x := letter(i)
		fmt.Fprintf(&buf, "\n// Push_%d appends a single value to %s.\n", i, phrase(i))
		fmt.Fprintf(&buf, "func Push_%d%s(t %s, x %s) %s {\n", i, typeParams(i+1), pt, x, ot)
		fmt.Fprintf(&buf, "\treturn Join_%d_1(t, tuple.New1(x))\n}\n", i)
		fmt.Fprintf(&buf, "\n// Pop_%d splits the last value from %s, leaving %s.\n", i, phrase(i+1), phrase(i))
		fmt.Fprintf(&buf, "func Pop_%d%s(t %s) (%s, %s) {\n", i, typeParams(i+1), ot, pt, x)
		fmt.Fprintf(&buf, "\trest, last := Split_%d_1(t)\n\treturn rest, last.A\n}\n", i)
	}
	return buf.Bytes()
}

func letter(k int) string {
	return alphabet[k : k+1]
}

func letters(offset, n int) []string {
	ss := make([]string, n)
	for k := range ss {
		ss[k] = letter(offset + k)
	}
	return ss
}

// typeParams returns the clause declaring the first n type parameters,
// or the empty string when there is nothing to declare.
func typeParams(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("[%s any]", strings.Join(letters(0, n), ", "))
}

func tupleType(n int, params []string) string {
	if n == 0 {
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", n, strings.Join(params, ", "))
}

// phrase describes an n-tuple in doc comment prose.
func phrase(n int) string {
	switch n {
	case 0:
		return "the empty tuple"
	case 8, 11, 18:
		return fmt.Sprintf("an %d-tuple", n)
	}
	return fmt.Sprintf("a %d-tuple", n)
}

func values(k int) string {
	if k == 1 {
		return "1 value"
	}
	return fmt.Sprintf("%d values", k)
}
