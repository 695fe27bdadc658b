package catalog

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is what a filter expression sees for each item.
type filterEnv struct {
	Department string `expr:"department"`
	Title      string `expr:"title"`
}

// Filter keeps the items for which a boolean expression holds, for example
//
//	department != "Meats" && len(title) > 3
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles source. An empty source yields a nil Filter, which
// keeps everything.
func CompileFilter(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}
	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match reports whether the item titled title in department passes.
func (f *Filter) Match(department, title string) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, filterEnv{Department: department, Title: title})
	if err != nil {
		return false, fmt.Errorf("run filter: %w", err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns cat with the items that fail the filter removed. Departments
// left empty stay, so their headers keep showing.
func (f *Filter) Apply(cat Catalog) (Catalog, error) {
	if f == nil {
		return cat, nil
	}
	out := Catalog{Aisles: make([]Aisle, 0, len(cat.Aisles))}
	for _, a := range cat.Aisles {
		kept := Aisle{Department: a.Department}
		for _, item := range a.Items {
			ok, err := f.Match(a.Department.Title, item.Title)
			if err != nil {
				return Catalog{}, err
			}
			if ok {
				kept.Items = append(kept.Items, item)
			}
		}
		out.Aisles = append(out.Aisles, kept)
	}
	return out, nil
}
