package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeID_DerivedFromDay(t *testing.T) {
	id := NewNodeID("14")

	assert.Equal(t, "day-14", id.String())
	assert.Equal(t, "14", id.Day())
	assert.False(t, id.IsZero())
}

func TestNodeID_OpaqueDayLabels(t *testing.T) {
	// Day labels are not numbers; anything the parser emits is legal
	id := NewNodeID("2024-01-05")
	assert.Equal(t, "day-2024-01-05", id.String())
	assert.Equal(t, "2024-01-05", id.Day())
}

func TestNodeIDFromString(t *testing.T) {
	id, err := NodeIDFromString("day-3")
	require.NoError(t, err)
	assert.Equal(t, "day-3", id.String())

	_, err = NodeIDFromString("")
	assert.Error(t, err)
}

func TestNodeID_Equals(t *testing.T) {
	assert.True(t, NewNodeID("1").Equals(NewNodeID("1")))
	assert.False(t, NewNodeID("1").Equals(NewNodeID("2")))
}

func TestNodeID_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewNodeID("7"))
	require.NoError(t, err)
	assert.Equal(t, `"day-7"`, string(data))

	var id NodeID
	require.NoError(t, json.Unmarshal(data, &id))
	assert.True(t, id.Equals(NewNodeID("7")))
}

func TestNodeID_UnmarshalJSON_EdgeCases(t *testing.T) {
	var id NodeID
	require.NoError(t, id.UnmarshalJSON([]byte("null")))
	assert.True(t, id.IsZero())

	err := id.UnmarshalJSON([]byte("42"))
	assert.EqualError(t, err, "NodeID must be a string")
}

func TestCategoryFromString(t *testing.T) {
	assert.Equal(t, CategoryVisualization, CategoryFromString("Visualization"))
	assert.Equal(t, CategoryCoreFeatures, CategoryFromString("Core Features"))

	// Unknown values degrade to Other, never an error
	assert.Equal(t, CategoryOther, CategoryFromString("Nonsense"))
	assert.Equal(t, CategoryOther, CategoryFromString(""))
}

func TestAllCategories_OrderAndCopy(t *testing.T) {
	categories := AllCategories()

	require.Len(t, categories, 9)
	assert.Equal(t, CategoryVisualization, categories[0])
	assert.Equal(t, CategoryOther, categories[8])

	// Mutating the returned slice must not leak into the package state
	categories[0] = CategoryOther
	assert.Equal(t, CategoryVisualization, AllCategories()[0])
}

func TestCategory_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(CategorySearchFilter)
	require.NoError(t, err)
	assert.Equal(t, `"Search & Filter"`, string(data))

	var c Category
	require.NoError(t, json.Unmarshal(data, &c))
	assert.True(t, c.Equals(CategorySearchFilter))
}

func TestCategory_UnmarshalJSON_Lenient(t *testing.T) {
	var c Category
	require.NoError(t, c.UnmarshalJSON([]byte(`"made up"`)))
	assert.Equal(t, CategoryOther, c)

	// Non-string payloads also degrade instead of erroring
	require.NoError(t, c.UnmarshalJSON([]byte("17")))
	assert.Equal(t, CategoryOther, c)

	c = CategoryAnalytics
	require.NoError(t, c.UnmarshalJSON([]byte("null")))
	assert.Equal(t, CategoryAnalytics, c)
}

func TestPosition_EqualsIsExact(t *testing.T) {
	a := NewPosition(1.5, 2.5)
	b := NewPosition(1.5, 2.5)
	c := NewPosition(1.5, 2.5000001)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(400.0, 90.0)", NewPosition(400, 90).String())
}
