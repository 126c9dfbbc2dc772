package block

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/category"
)

var sep = strings.Repeat("=", 80)

const sectionFixture = `
【菜名】西红柿炒鸡蛋

【首图】http://img.example.com/cover.jpg

【食材明细】
主料：
  - 鸡蛋: 3个
  - 西红柿: 2个
辅料：
  - 盐: 适量
  - 糖: 5克

【制作信息】
口味: 酸甜
工艺: 炒
耗时: 10分钟
难度: 普通

【做法步骤】
步骤 1: 鸡蛋打散备用
  图片: http://img.example.com/s1.jpg
步骤 2: 西红柿切块下锅
`

func TestParseSection(t *testing.T) {
	r := New(category.NewIndex()).ParseSection(sectionFixture)
	require.NotNil(t, r)

	assert.Equal(t, "西红柿炒鸡蛋", r.Name)
	assert.Equal(t, "http://img.example.com/cover.jpg", r.Image)
	assert.Equal(t, "酸甜", r.Taste)
	assert.Equal(t, "炒", r.Craft)
	assert.Equal(t, "10分钟", r.RawDuration)
	assert.Equal(t, "普通", r.Difficulty)
	assert.Equal(t, 10, r.CookTime)

	// Main ingredients come before auxiliary ones.
	require.Len(t, r.Ingredients, 4)
	assert.Equal(t, "鸡蛋", r.Ingredients[0].IngredientName)
	assert.Equal(t, 3.0, r.Ingredients[0].Quantity)
	assert.Equal(t, "个", r.Ingredients[0].Unit)
	assert.Equal(t, "西红柿", r.Ingredients[1].IngredientName)
	assert.Equal(t, "盐", r.Ingredients[2].IngredientName)
	assert.Equal(t, 0.0, r.Ingredients[2].Quantity)
	assert.Equal(t, "适量", r.Ingredients[2].Unit)
	assert.Equal(t, "糖", r.Ingredients[3].IngredientName)
	assert.Equal(t, 5.0, r.Ingredients[3].Quantity)
	assert.Equal(t, "克", r.Ingredients[3].Unit)

	require.Len(t, r.Steps, 2)
	assert.Equal(t, 1, r.Steps[0].Number)
	assert.Equal(t, "鸡蛋打散备用", r.Steps[0].Description)
	assert.Equal(t, "http://img.example.com/s1.jpg", r.Steps[0].Image)
	assert.Equal(t, 2, r.Steps[1].Number)
	assert.Empty(t, r.Steps[1].Image)

	// Finalized fields.
	assert.True(t, strings.HasPrefix(r.ID, "recipe_"))
	assert.Equal(t, []string{core.CategoryOther}, r.Category)
	assert.Equal(t, 2, r.Servings)
	assert.NotEmpty(t, r.Description)
}

func TestParseSectionDefaults(t *testing.T) {
	r := New(category.NewIndex()).ParseSection("【菜名】白粥")
	require.NotNil(t, r)

	assert.Equal(t, "白粥", r.Name)
	assert.Equal(t, 30, r.CookTime)
	require.Len(t, r.Steps, 1)
	assert.Equal(t, core.DefaultStepText, r.Steps[0].Description)
	assert.Empty(t, r.Ingredients)
}

func TestParseSectionCraftCategory(t *testing.T) {
	r := New(category.NewIndex()).ParseSection("【菜名】戚风蛋糕\n【制作信息】\n工艺: 烤")
	require.NotNil(t, r)
	assert.Equal(t, []string{"烘焙"}, r.Category)
}

func TestParseSectionWithoutName(t *testing.T) {
	p := New(category.NewIndex())
	assert.Nil(t, p.ParseSection("【首图】http://img.example.com/x.jpg"))
	assert.Nil(t, p.ParseSection("   \n  \n"))
}

func TestParseFile(t *testing.T) {
	content := "\uFEFF菜谱提取结果\n共 2 个菜谱\n" + sep + "\n" + sectionFixture + "\n" + sep + `
【菜名】白灼菜心
【做法步骤】
步骤 1: 菜心洗净焯水
` + sep + "\n"

	recipes := New(category.NewIndex()).ParseFile(content)
	require.Len(t, recipes, 2)
	assert.Equal(t, "西红柿炒鸡蛋", recipes[0].Name)
	assert.Equal(t, "白灼菜心", recipes[1].Name)
}
