package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
)

func sample() core.Recipe {
	return core.Recipe{
		ID:          "recipe_test",
		Name:        "西红柿炒鸡蛋",
		Category:    []string{"热菜"},
		Image:       "http://img.example.com/cover.jpg",
		Description: "酸甜开胃。",
		CookTime:    10,
		Servings:    2,
		Ingredients: []core.Ingredient{
			{IngredientID: "ing_1", IngredientName: "鸡蛋", Quantity: 3, Unit: "个"},
			{IngredientID: "ing_2", IngredientName: "盐", Quantity: 0, Unit: "适量"},
		},
		Steps: []core.Step{
			{Number: 1, Description: "鸡蛋打散备用", Image: "http://img.example.com/s1.jpg"},
			{Number: 2, Description: "下锅翻炒"},
		},
		Taste:    "酸甜",
		Craft:    "炒",
		Tips:     "热锅快炒。",
		Cookware: "炒锅",
	}
}

func TestJSONRendererFieldNames(t *testing.T) {
	data, err := NewJSONRenderer().Render([]core.Recipe{sample()})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	rec := decoded[0]
	for _, key := range []string{"id", "name", "category", "description", "cookTime", "servings", "ingredients", "steps"} {
		assert.Contains(t, rec, key)
	}

	ings := rec["ingredients"].([]any)
	first := ings[0].(map[string]any)
	assert.Equal(t, "鸡蛋", first["ingredientName"])
	assert.Equal(t, "ing_1", first["ingredientId"])

	steps := rec["steps"].([]any)
	firstStep := steps[0].(map[string]any)
	assert.Equal(t, 1.0, firstStep["step"])
}

func TestJSONRendererEmpty(t *testing.T) {
	data, err := NewJSONRenderer().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
}

func TestMarkdownRenderOne(t *testing.T) {
	md := string(NewMarkdownRenderer().RenderOne(&core.Recipe{
		ID:          "recipe_test",
		Name:        "西红柿炒鸡蛋",
		Category:    []string{"热菜"},
		Description: "酸甜开胃。",
		CookTime:    10,
		Servings:    2,
		Ingredients: []core.Ingredient{
			{IngredientName: "鸡蛋", Quantity: 3, Unit: "个"},
			{IngredientName: "盐", Quantity: 0, Unit: "适量"},
			{IngredientName: "油", Quantity: 1.5, Unit: "勺"},
		},
		Steps: []core.Step{
			{Number: 1, Description: "鸡蛋打散备用"},
			{Number: 2, Description: "下锅翻炒"},
		},
		Tips: "热锅快炒。",
	}))

	assert.Contains(t, md, "# 西红柿炒鸡蛋")
	assert.Contains(t, md, "- 分类：热菜")
	assert.Contains(t, md, "- 耗时：约10分钟")
	assert.Contains(t, md, "- 鸡蛋：3个")
	assert.Contains(t, md, "- 盐：适量")
	assert.Contains(t, md, "- 油：1.5勺")
	assert.Contains(t, md, "1. 鸡蛋打散备用")
	assert.Contains(t, md, "## 小窍门")
}

func TestMarkdownRenderJoinsCards(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render([]core.Recipe{sample(), sample()})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n---\n")
	assert.Equal(t, ".md", r.Extension())
}
