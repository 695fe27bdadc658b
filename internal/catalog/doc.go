// Package catalog provides the grocery catalog shown by the accordion list:
// departments (sections) holding items (rows).
//
// Catalogs come from the builtin Fruit/Meats/Vegetables set or from a data
// file in TOML or YAML:
//
//	[[departments]]
//	title = "Fruit"
//	items = ["Banana", "Cherry"]
//
//	departments:
//	  - title: Fruit
//	    items: [Banana, Cherry]
//
// Item keys are name-based UUIDs over department and title, which keeps them
// unique across the whole catalog as the accordion controller requires.
// Titles must be unique within a department; Load rejects duplicates.
//
// A Filter written in expr (github.com/expr-lang/expr) can hide items, with
// `department` and `title` in scope.
package catalog
