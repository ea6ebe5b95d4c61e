// Package palette holds the fixed color tables renderers use for edges
// and categories. The tables are process-wide constants; lookups are
// total, falling back to gray for anything unknown.
package palette

// Fallback colors
const (
	DefaultDependencyColor = "#9ca3af"
	DefaultCategoryColor   = "#6b7280"
)

// dependencyColors maps dependency types to their stroke color
var dependencyColors = map[string]string{
	"builds-on": "#ef4444",
	"enhances":  "#3b82f6",
	"uses":      "#10b981",
}

// categoryColors maps feature categories to their fill color
var categoryColors = map[string]string{
	"Visualization":     "#8b5cf6",
	"UI/UX":             "#ec4899",
	"Search & Filter":   "#f59e0b",
	"Data & Export":     "#10b981",
	"Analytics":         "#3b82f6",
	"Gamification":      "#eab308",
	"AI & Intelligence": "#06b6d4",
	"Core Features":     "#ef4444",
	"Other":             "#6b7280",
}

// DependencyColor returns the stroke color for a dependency type
func DependencyColor(dependencyType string) string {
	if color, ok := dependencyColors[dependencyType]; ok {
		return color
	}
	return DefaultDependencyColor
}

// CategoryColor returns the fill color for a category
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultCategoryColor
}

// DependencyColors returns a copy of the dependency color table
func DependencyColors() map[string]string {
	out := make(map[string]string, len(dependencyColors))
	for k, v := range dependencyColors {
		out[k] = v
	}
	return out
}

// CategoryColors returns a copy of the category color table
func CategoryColors() map[string]string {
	out := make(map[string]string, len(categoryColors))
	for k, v := range categoryColors {
		out[k] = v
	}
	return out
}
