package catalog

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	if len(cat.Aisles) != 3 {
		t.Fatalf("Builtin() aisles = %d, want 3", len(cat.Aisles))
	}
	if cat.Aisles[0].Department.Title != "Fruit" || cat.Aisles[0].Items[0].Title != "Banana" {
		t.Fatalf("Builtin() first entry = %+v, want Fruit/Banana", cat.Aisles[0])
	}
	if cat.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", cat.Len())
	}
}

func TestNewItem_UniqueAcrossDepartments(t *testing.T) {
	a := NewItem("Fruit", "Tomato")
	b := NewItem("Vegetables", "Tomato")
	if a == b {
		t.Fatalf("items with equal titles in different departments share key %v", a.ID)
	}
	if again := NewItem("Fruit", "Tomato"); again != a {
		t.Fatalf("NewItem is not deterministic: %v vs %v", again.ID, a.ID)
	}
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Titles
		want    error
	}{
		{"duplicate department", []Titles{{Department: "Fruit"}, {Department: " Fruit "}}, ErrDuplicateDepartment},
		{"duplicate item", []Titles{{Department: "Fruit", Items: []string{"Kiwi", "Kiwi "}}}, ErrDuplicateItem},
		{"empty department", []Titles{{Department: "  "}}, ErrEmptyTitle},
		{"empty item", []Titles{{Department: "Fruit", Items: []string{""}}}, ErrEmptyTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.entries)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_TOMLAndYAML(t *testing.T) {
	tomlData := []byte(`
[[departments]]
title = "Bakery"
items = ["Bread", "Bagel"]

[[departments]]
title = "Dairy"
items = ["Milk"]
`)
	yamlData := []byte(`
departments:
  - title: Bakery
    items: [Bread, Bagel]
  - title: Dairy
    items: [Milk]
`)

	for _, tc := range []struct {
		ext  string
		data []byte
	}{{".toml", tomlData}, {".yaml", yamlData}, {".YML", yamlData}} {
		t.Run(tc.ext, func(t *testing.T) {
			cat, err := Parse(tc.data, tc.ext)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if len(cat.Aisles) != 2 || cat.Aisles[1].Department.Title != "Dairy" {
				t.Fatalf("Parse aisles = %+v, want Bakery, Dairy", cat.Aisles)
			}
			if got := cat.Aisles[0].Items[1].Title; got != "Bagel" {
				t.Fatalf("second Bakery item = %q, want Bagel", got)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte(`x`), ".json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Parse(.json) error = %v, want ErrUnsupportedFormat", err)
	}
	_, err := Parse([]byte(`departments = [`), ".toml")
	if err == nil || !strings.Contains(err.Error(), "parse catalog") {
		t.Fatalf("Parse(bad toml) error = %v, want parse catalog", err)
	}
	_, err = Parse([]byte("departments:\n  - title: A\n    items: [x, x]\n"), ".yaml")
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("Parse(duplicate) error = %v, want ErrDuplicateItem", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load error = %v, want os.ErrNotExist", err)
	}
}

func TestSample_DropsAtMostOne(t *testing.T) {
	cat := Builtin()
	itemDrops := 0
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 1))
		for i := 0; i < 20; i++ {
			s := cat.Sample(rng)
			if got := len(cat.Aisles) - len(s.Aisles); got != 0 && got != 1 {
				t.Fatalf("seed %d: Sample dropped %d aisles, want 0 or 1", seed, got)
			}
			for _, a := range s.Aisles {
				orig := findAisle(cat, a.Department.Title)
				dropped := len(orig.Items) - len(a.Items)
				if dropped != 0 && dropped != 1 {
					t.Fatalf("seed %d: Sample dropped %d items from %s, want 0 or 1", seed, dropped, a.Department.Title)
				}
				if dropped == 1 {
					itemDrops++
				}
				for _, item := range a.Items {
					if !slices.Contains(orig.Items, item) {
						t.Fatalf("seed %d: Sample invented %q in %s", seed, item.Title, a.Department.Title)
					}
				}
			}
		}
	}
	if itemDrops == 0 {
		t.Fatalf("Sample never dropped an item")
	}
	if cat.Len() != 12 {
		t.Fatalf("Sample mutated the source catalog")
	}
}

func findAisle(cat Catalog, title string) Aisle {
	for _, a := range cat.Aisles {
		if a.Department.Title == title {
			return a
		}
	}
	return Aisle{}
}

func TestDataset_KeepsAisleOrder(t *testing.T) {
	d := Builtin().Dataset()
	sections := d.Sections()
	if len(sections) != 3 || sections[2].Title != "Vegetables" {
		t.Fatalf("Dataset sections = %v, want Fruit, Meats, Vegetables", sections)
	}
	if !d.HasRow(NewItem("Meats", "Lamb")) {
		t.Fatalf("Dataset missing Lamb")
	}
}

func TestClone_IsDeep(t *testing.T) {
	cat := Builtin()
	dup := cat.Clone()
	dup.Aisles[0].Items[0].Title = "Mutated"
	if cat.Aisles[0].Items[0].Title != "Banana" {
		t.Fatalf("Clone shares item storage")
	}
}
