// Package category maps source cuisine labels, breadcrumb slugs, craft
// fields, and free text onto the application's category set. The index
// is built once per batch run and passed to whatever needs it, instead
// of living in a lazily-initialized package global.
package category

import "strings"

// Index holds the lookup tables. Construct with NewIndex.
type Index struct {
	cuisine map[string]string
	slugs   []slugEntry
}

type slugEntry struct {
	category string
	keywords []string
}

// NewIndex builds the category index.
func NewIndex() *Index {
	return &Index{
		cuisine: cuisineTable(),
		slugs: []slugEntry{
			{"热菜", []string{"热菜", "recai"}},
			{"凉菜", []string{"凉菜", "liangcai"}},
			{"汤羹", []string{"汤羹", "tanggeng"}},
			{"主食", []string{"主食", "zhushi"}},
			{"小吃", []string{"小吃", "xiaochi"}},
			{"西餐", []string{"西餐", "xican"}},
			{"烘焙", []string{"烘焙", "hongbei"}},
			{"饮品", []string{"饮品", "yinpin"}},
		},
	}
}

// FromCuisine maps an explicit cuisine/region label through the lookup
// table, falling back to keyword inference for labels not in the table.
func (ix *Index) FromCuisine(label string) string {
	if c, ok := ix.cuisine[label]; ok {
		return c
	}
	return ix.Infer(label)
}

// FromBreadcrumb matches a breadcrumb link title and URL slug against
// the site's category keyword table.
func (ix *Index) FromBreadcrumb(title, slug string) (string, bool) {
	for _, e := range ix.slugs {
		for _, k := range e.keywords {
			if strings.Contains(title, k) || strings.Contains(slug, k) {
				return e.category, true
			}
		}
	}
	return "", false
}

// FromCraft infers a category from the 工艺 metadata field of the
// plain-text export. Returns false when the craft suggests nothing.
func (ix *Index) FromCraft(craft string) (string, bool) {
	switch {
	case strings.Contains(craft, "烘焙") || strings.Contains(craft, "烤"):
		return "烘焙", true
	case strings.Contains(craft, "煮") || strings.Contains(craft, "炖") || strings.Contains(craft, "煲"):
		return "热菜", true
	case strings.Contains(craft, "凉拌") || strings.Contains(craft, "拌"):
		return "其他", true
	}
	return "", false
}

// Infer guesses a category from free text (dish name, description).
// Text with no recognized keyword yields the 其他 sentinel.
func (ix *Index) Infer(text string) string {
	if text == "" {
		return "其他"
	}
	t := strings.ToLower(text)

	if containsAny(t, "小吃", "点心", "零食", "干果") {
		return "小吃"
	}
	if containsAny(t, "饮品", "饮料", "茶") ||
		(strings.Contains(t, "汤") && !strings.Contains(t, "菜")) {
		return "饮品"
	}
	if containsAny(t, "糕点", "蛋糕", "面包", "烘焙", "饼干", "甜点") {
		return "烘焙"
	}
	if containsAny(t, "养生", "药膳", "滋补", "健康") {
		return "养生"
	}
	return "其他"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cuisineTable is the literal cuisine/region → category mapping of the
// source site's taxonomy.
func cuisineTable() map[string]string {
	return map[string]string{
		// 中华美食 - 各大菜系
		"川菜": "热菜", "鲁菜": "热菜", "粤菜": "热菜", "湘菜": "热菜",
		"闽菜": "热菜", "浙菜": "热菜", "苏菜": "热菜", "徽菜": "热菜",
		"京菜": "热菜", "沪菜": "热菜", "豫菜": "热菜", "楚菜": "热菜",
		"东北菜": "热菜", "西北菜": "热菜", "云贵菜": "热菜", "江西菜": "热菜",
		"山西菜": "热菜", "港台菜": "热菜", "清真菜": "热菜", "其他菜系": "其他",

		// 西餐美食
		"日本料理": "热菜", "韩国料理": "热菜", "美国菜": "热菜", "意大利菜": "热菜",
		"法国菜": "热菜", "墨西哥菜": "热菜", "东南亚菜": "热菜", "澳洲菜": "热菜",
		"其他菜谱": "其他",

		// 特色菜谱
		"家常菜": "热菜", "食谱": "其他", "凉菜": "其他", "糕点": "烘焙",
		"美味粥汤": "其他", "饮品": "饮品", "火锅底料的做法": "热菜",
		"微波菜谱": "热菜", "药膳偏方": "养生", "干果制作": "小吃",
		"私家菜": "热菜", "素斋菜": "其他", "点心": "小吃", "卤酱菜": "其他",
		"年夜饭": "热菜",

		// 各地小吃
		"安徽小吃": "小吃", "北京小吃": "小吃", "重庆小吃": "小吃", "福建小吃": "小吃",
		"甘肃小吃": "小吃", "广东小吃": "小吃", "广西小吃": "小吃", "贵州小吃": "小吃",
		"海南小吃": "小吃", "河北小吃": "小吃", "河南小吃": "小吃", "湖北小吃": "小吃",
		"湖南小吃": "小吃", "吉林小吃": "小吃", "江苏小吃": "小吃", "江西小吃": "小吃",
		"辽宁小吃": "小吃", "宁夏小吃": "小吃", "青海小吃": "小吃", "山西小吃": "小吃",
		"陕西小吃": "小吃", "山东小吃": "小吃", "上海小吃": "小吃", "四川小吃": "小吃",
		"天津小吃": "小吃", "黑龙江小吃": "小吃", "西藏小吃": "小吃", "新疆小吃": "小吃",
		"云南小吃": "小吃", "内蒙古小吃": "小吃", "浙江小吃": "小吃",
	}
}
