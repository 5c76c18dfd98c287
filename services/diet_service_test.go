package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMeal(t *testing.T) {
	assert.Nil(t, marshalMeal(nil))
	assert.Nil(t, marshalMeal([]FoodEntry{}))

	raw := marshalMeal([]FoodEntry{{Name: "Oatmeal", Portion: "200g", Calories: 280}})
	require.NotNil(t, raw)
	assert.JSONEq(t, `[{"name":"Oatmeal","portion":"200g","calories":280}]`, *raw)
}

func TestParseMealSlotRoundTrip(t *testing.T) {
	items := []FoodEntry{
		{Name: "Oatmeal", Portion: "200g", Calories: 280},
		{Name: "Banana", Portion: "1", Calories: 105},
	}

	raw := marshalMeal(items)
	require.NotNil(t, raw)
	assert.Equal(t, items, parseMealSlot(raw, "breakfast"))
}

func TestParseMealSlotDegradesGracefully(t *testing.T) {
	assert.Nil(t, parseMealSlot(nil, "lunch"))

	empty := ""
	assert.Nil(t, parseMealSlot(&empty, "lunch"))

	malformed := `{"not":"a list"`
	assert.Nil(t, parseMealSlot(&malformed, "lunch"))
}

func TestDietRequestEmpty(t *testing.T) {
	var req DietRequest
	assert.True(t, req.Empty())

	req.Dessert = []FoodEntry{{Name: "Cake", Portion: "slice", Calories: 350}}
	assert.False(t, req.Empty())
}
