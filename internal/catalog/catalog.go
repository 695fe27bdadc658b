package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/accordion/internal/accordion"
)

var (
	ErrDuplicateDepartment = errors.New("duplicate department")
	ErrDuplicateItem       = errors.New("duplicate item")
	ErrEmptyTitle          = errors.New("empty title")
)

// itemNamespace seeds name-based item IDs.
var itemNamespace = uuid.MustParse("5d1c3f0a-7b8e-4a52-9c1d-2f6e8a4b0c37")

// Department is a section of the catalog.
type Department struct {
	Title string
}

// Item is a row of the catalog. Its ID is derived from the department and
// title, so items with the same title in different departments stay distinct.
type Item struct {
	ID    uuid.UUID
	Title string
}

// NewItem returns the item titled title in department.
func NewItem(department, title string) Item {
	return Item{
		ID:    uuid.NewSHA1(itemNamespace, []byte(department+"\x00"+title)),
		Title: title,
	}
}

// Aisle is one department and its items in display order.
type Aisle struct {
	Department Department
	Items      []Item
}

// Catalog is an ordered list of aisles.
type Catalog struct {
	Aisles []Aisle
}

// Titles is the plain form of a catalog: department titles with item titles.
type Titles struct {
	Department string
	Items      []string
}

// Build validates titles and returns the catalog they describe.
func Build(entries []Titles) (Catalog, error) {
	var cat Catalog
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		dept := strings.TrimSpace(entry.Department)
		if dept == "" {
			return Catalog{}, fmt.Errorf("department: %w", ErrEmptyTitle)
		}
		if seen[dept] {
			return Catalog{}, fmt.Errorf("%w: %q", ErrDuplicateDepartment, dept)
		}
		seen[dept] = true

		aisle := Aisle{Department: Department{Title: dept}}
		items := make(map[string]bool, len(entry.Items))
		for _, raw := range entry.Items {
			title := strings.TrimSpace(raw)
			if title == "" {
				return Catalog{}, fmt.Errorf("item in %q: %w", dept, ErrEmptyTitle)
			}
			if items[title] {
				return Catalog{}, fmt.Errorf("%w: %q in %q", ErrDuplicateItem, title, dept)
			}
			items[title] = true
			aisle.Items = append(aisle.Items, NewItem(dept, title))
		}
		cat.Aisles = append(cat.Aisles, aisle)
	}
	return cat, nil
}

// Builtin returns the catalog used when no data file is configured.
func Builtin() Catalog {
	cat, err := Build([]Titles{
		{Department: "Fruit", Items: []string{"Banana", "Cherry", "Kiwi", "Grape"}},
		{Department: "Meats", Items: []string{"Lamb", "Chicken", "Beef"}},
		{Department: "Vegetables", Items: []string{"Cabbage", "Carrot", "Pea", "Asparagus", "Courgette"}},
	})
	if err != nil {
		panic(err)
	}
	return cat
}

// Len returns the number of items across all aisles.
func (c Catalog) Len() int {
	n := 0
	for _, a := range c.Aisles {
		n += len(a.Items)
	}
	return n
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	if c.Aisles == nil {
		return Catalog{}
	}
	out := Catalog{Aisles: make([]Aisle, len(c.Aisles))}
	for i, a := range c.Aisles {
		out.Aisles[i] = Aisle{Department: a.Department, Items: slices.Clone(a.Items)}
	}
	return out
}

// Sample drops at most one aisle and at most one item from each remaining
// aisle, each with even odds. It mimics a server returning a slightly
// different catalog on every fetch.
func (c Catalog) Sample(rng *rand.Rand) Catalog {
	aisles := maybeDropOne(rng, c.Aisles)
	out := Catalog{Aisles: make([]Aisle, 0, len(aisles))}
	for _, a := range aisles {
		out.Aisles = append(out.Aisles, Aisle{
			Department: a.Department,
			Items:      maybeDropOne(rng, a.Items),
		})
	}
	return out
}

func maybeDropOne[T any](rng *rand.Rand, in []T) []T {
	out := slices.Clone(in)
	if len(out) == 0 || rng.IntN(2) == 0 {
		return out
	}
	i := rng.IntN(len(out))
	return slices.Delete(out, i, i+1)
}

// Dataset converts the catalog for an accordion controller, keeping aisle
// order.
func (c Catalog) Dataset() accordion.Dataset[Department, Item] {
	groups := make([]accordion.Group[Department, Item], 0, len(c.Aisles))
	for _, a := range c.Aisles {
		groups = append(groups, accordion.Group[Department, Item]{
			Section: a.Department,
			Rows:    a.Items,
		})
	}
	return accordion.NewDataset(groups...)
}
