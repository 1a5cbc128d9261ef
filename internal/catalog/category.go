package catalog

// Category classifies a question by the kind of chart it asks about.
type Category string

const (
	CategoryTable     Category = "table"
	CategoryBar       Category = "bar"
	CategoryPie       Category = "pie"
	CategoryComposite Category = "composite"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryTable,
	CategoryBar,
	CategoryPie,
	CategoryComposite,
}

// DefaultTargetSeconds is the fallback solve-time budget when a category
// has no entry in the default table and no override is configured.
const DefaultTargetSeconds = 50

// defaultTargets holds the per-category solve-time budgets in seconds.
// Composite charts combine two data sources, so they get extra time.
var defaultTargets = map[Category]int{
	CategoryTable:     50,
	CategoryBar:       45,
	CategoryPie:       40,
	CategoryComposite: 60,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := defaultTargets[c]
	return ok
}

// TargetSeconds returns the default solve-time budget for the category.
func (c Category) TargetSeconds() int {
	if t, ok := defaultTargets[c]; ok {
		return t
	}
	return DefaultTargetSeconds
}
