package valueobjects

// Category is a value object for the semantic classification of a feature.
// The set is closed; anything outside it degrades to CategoryOther rather
// than producing an error.
type Category struct {
	value string
}

var (
	CategoryVisualization = Category{"Visualization"}
	CategoryUIUX          = Category{"UI/UX"}
	CategorySearchFilter  = Category{"Search & Filter"}
	CategoryDataExport    = Category{"Data & Export"}
	CategoryAnalytics     = Category{"Analytics"}
	CategoryGamification  = Category{"Gamification"}
	CategoryAI            = Category{"AI & Intelligence"}
	CategoryCoreFeatures  = Category{"Core Features"}
	CategoryOther         = Category{"Other"}
)

// allCategories preserves the declaration order used across the system.
var allCategories = []Category{
	CategoryVisualization,
	CategoryUIUX,
	CategorySearchFilter,
	CategoryDataExport,
	CategoryAnalytics,
	CategoryGamification,
	CategoryAI,
	CategoryCoreFeatures,
	CategoryOther,
}

// CategoryFromString maps a string to a known Category.
// Unknown values fall back to CategoryOther; there is no error path.
func CategoryFromString(s string) Category {
	for _, c := range allCategories {
		if c.value == s {
			return c
		}
	}
	return CategoryOther
}

// AllCategories returns the known categories in declaration order
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// String returns the display name of the category
func (c Category) String() string {
	return c.value
}

// Equals checks if two categories are equal
func (c Category) Equals(other Category) bool {
	return c.value == other.value
}

// IsZero checks if the category is unset
func (c Category) IsZero() bool {
	return c.value == ""
}

// MarshalJSON implements json.Marshaler
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Category) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*c = CategoryFromString(string(data[1 : len(data)-1]))
		return nil
	}
	*c = CategoryOther
	return nil
}
