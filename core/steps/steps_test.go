package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
)

func TestAddStripsNumericLabel(t *testing.T) {
	l := NewList()

	require.True(t, l.Add("1、将五花肉切成麻将大小的块"))
	require.True(t, l.Add("3. 锅中倒油烧至六成热"))

	got := l.Steps()
	require.Len(t, got, 2)
	assert.Equal(t, "将五花肉切成麻将大小的块", got[0].Description)
	assert.Equal(t, "锅中倒油烧至六成热", got[1].Description)
	assert.Equal(t, []int{1, 3}, l.SourceNumbers())
}

// Numbering is positional regardless of the labels on the source
// fragments.
func TestNumberingIsContiguous(t *testing.T) {
	l := NewList()
	l.Add("5、先把鸡蛋打散备用")
	l.Add("2、热锅倒油烧热待用")
	l.Add("9、下锅翻炒至定型盛出")

	for i, s := range l.Steps() {
		assert.Equal(t, i+1, s.Number)
	}
	assert.Equal(t, 3, l.Len())
}

func TestStrictValidation(t *testing.T) {
	l := NewList()

	t.Run("too short", func(t *testing.T) {
		assert.False(t, l.Add("翻炒"))
	})

	t.Run("tip section text", func(t *testing.T) {
		assert.False(t, l.Add("注意事项要牢记以免烧糊"))
	})

	t.Run("ingredient section text", func(t *testing.T) {
		assert.False(t, l.Add("本菜的主料和辅料要分开处理"))
	})

	t.Run("materials line without method", func(t *testing.T) {
		assert.False(t, l.Add("原料准备好之后就可以开始了"))
	})

	assert.Zero(t, l.Len())
}

func TestLenientValidation(t *testing.T) {
	l := NewLenient()

	assert.False(t, l.Add("翻炒"))
	assert.True(t, l.Add("翻炒匀"))
	assert.True(t, l.AddWithImage("出锅装盘", "http://img.example.com/s2.jpg"))

	got := l.Steps()
	require.Len(t, got, 2)
	assert.Equal(t, "http://img.example.com/s2.jpg", got[1].Image)
}

func TestAddSanitizesFragment(t *testing.T) {
	l := NewLenient()
	require.True(t, l.Add("<p>将 <b>鸡蛋</b> 打散   备用</p>"))
	assert.Equal(t, "将 鸡蛋 打散 备用", l.Steps()[0].Description)
}

func TestDefault(t *testing.T) {
	s := Default("http://img.example.com/cover.jpg")
	assert.Equal(t, core.Step{
		Number:      1,
		Description: core.DefaultStepText,
		Image:       "http://img.example.com/cover.jpg",
	}, s)
}
