package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCuisine(t *testing.T) {
	ix := NewIndex()

	assert.Equal(t, "热菜", ix.FromCuisine("川菜"))
	assert.Equal(t, "热菜", ix.FromCuisine("家常菜"))
	assert.Equal(t, "养生", ix.FromCuisine("药膳偏方"))
	assert.Equal(t, "小吃", ix.FromCuisine("北京小吃"))
	assert.Equal(t, "烘焙", ix.FromCuisine("糕点"))

	// Labels outside the table fall back to keyword inference.
	assert.Equal(t, "其他", ix.FromCuisine("不存在的菜系"))
}

func TestFromBreadcrumb(t *testing.T) {
	ix := NewIndex()

	cat, ok := ix.FromBreadcrumb("热菜", "recai")
	assert.True(t, ok)
	assert.Equal(t, "热菜", cat)

	cat, ok = ix.FromBreadcrumb("", "hongbei")
	assert.True(t, ok)
	assert.Equal(t, "烘焙", cat)

	_, ok = ix.FromBreadcrumb("首页", "home")
	assert.False(t, ok)
}

func TestFromCraft(t *testing.T) {
	ix := NewIndex()

	tests := []struct {
		craft string
		want  string
		ok    bool
	}{
		{"烤", "烘焙", true},
		{"炖", "热菜", true},
		{"煲", "热菜", true},
		{"凉拌", "其他", true},
		{"炒", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ix.FromCraft(tt.craft)
		assert.Equal(t, tt.ok, ok, "craft %q", tt.craft)
		assert.Equal(t, tt.want, got, "craft %q", tt.craft)
	}
}

func TestInfer(t *testing.T) {
	ix := NewIndex()

	tests := []struct {
		text string
		want string
	}{
		{"", "其他"},
		{"老北京小吃豌豆黄", "小吃"},
		{"冬瓜排骨汤", "饮品"},
		{"提拉米苏蛋糕", "烘焙"},
		{"养生枸杞粥", "养生"},
		{"凉拌黄瓜", "其他"},
		{"红烧肉", "其他"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ix.Infer(tt.text), "text %q", tt.text)
	}
}
