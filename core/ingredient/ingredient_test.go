package ingredient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListSentinelAmount(t *testing.T) {
	got := ParseList("盐适量")
	require.Len(t, got, 1)
	assert.Equal(t, "盐", got[0].IngredientName)
	assert.Equal(t, 0.0, got[0].Quantity)
	assert.Equal(t, "适量", got[0].Unit)
}

func TestParseListQuantityUnit(t *testing.T) {
	got := ParseList("鸡蛋2个")
	require.Len(t, got, 1)
	assert.Equal(t, "鸡蛋", got[0].IngredientName)
	assert.Equal(t, 2.0, got[0].Quantity)
	assert.Equal(t, "个", got[0].Unit)
}

func TestParseListLabeledBlob(t *testing.T) {
	got := ParseList("主料：粳米100克，桂皮2克")
	require.Len(t, got, 2)
	assert.Equal(t, "粳米", got[0].IngredientName)
	assert.Equal(t, 100.0, got[0].Quantity)
	assert.Equal(t, "克", got[0].Unit)
	assert.Equal(t, "桂皮", got[1].IngredientName)
	assert.Equal(t, 2.0, got[1].Quantity)
	assert.Equal(t, "克", got[1].Unit)
}

func TestParseListSpaceSeparated(t *testing.T) {
	got := ParseList("粳米 100克 桂皮 2克 盐 少许")
	require.Len(t, got, 3)
	assert.Equal(t, "粳米", got[0].IngredientName)
	assert.Equal(t, 100.0, got[0].Quantity)
	assert.Equal(t, "桂皮", got[1].IngredientName)
	assert.Equal(t, 2.0, got[1].Quantity)
	assert.Equal(t, "盐", got[2].IngredientName)
	assert.Equal(t, 0.0, got[2].Quantity)
	assert.Equal(t, "少许", got[2].Unit)
}

func TestParseListEdgeCases(t *testing.T) {
	t.Run("empty blob", func(t *testing.T) {
		assert.Empty(t, ParseList(""))
	})

	t.Run("numeric noise discarded", func(t *testing.T) {
		got := ParseList("200，鸡蛋2个，3.5")
		require.Len(t, got, 1)
		assert.Equal(t, "鸡蛋", got[0].IngredientName)
	})

	t.Run("parenthetical qualifier dropped", func(t *testing.T) {
		got := ParseList("猪肉（肥瘦）")
		require.Len(t, got, 1)
		assert.Equal(t, "猪肉", got[0].IngredientName)
		assert.Equal(t, 1.0, got[0].Quantity)
		assert.Equal(t, "适量", got[0].Unit)
	})

	t.Run("bare quantity keeps to-taste unit", func(t *testing.T) {
		got := ParseList("干辣椒5")
		require.Len(t, got, 1)
		assert.Equal(t, "干辣椒", got[0].IngredientName)
		assert.Equal(t, 5.0, got[0].Quantity)
		assert.Equal(t, "适量", got[0].Unit)
	})

	t.Run("bare name", func(t *testing.T) {
		got := ParseList("香菜")
		require.Len(t, got, 1)
		assert.Equal(t, "香菜", got[0].IngredientName)
		assert.Equal(t, 1.0, got[0].Quantity)
		assert.Equal(t, "适量", got[0].Unit)
	})
}

func TestParseListHTMLBlob(t *testing.T) {
	got := ParseList("<ul><li>主料：鸡蛋2个</li><li>盐适量</li></ul>")
	require.Len(t, got, 2)
	assert.Equal(t, "鸡蛋", got[0].IngredientName)
	assert.Equal(t, "盐", got[1].IngredientName)
}

func TestNewID(t *testing.T) {
	id := NewID("盐")
	assert.True(t, strings.HasPrefix(id, "ing_盐_"), id)
	assert.NotEqual(t, id, NewID("盐"))

	spaced := NewID("猪肉 （肥瘦）")
	assert.False(t, strings.ContainsAny(spaced, " （）"))
}
