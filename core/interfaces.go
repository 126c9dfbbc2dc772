// Package core defines the pipeline types for RecipePipe.
// Each stage of the pipeline is a clean, testable interface.
package core

// Sentinel values shared across the pipeline.
const (
	// UnknownName marks a document whose name could not be extracted.
	// The batch driver rejects recipes carrying it.
	UnknownName = "未知菜谱"

	// UnitToTaste is the unit for unspecified small/variable amounts.
	UnitToTaste = "适量"

	// DefaultStepText is the synthetic step inserted when no steps
	// survive extraction.
	DefaultStepText = "按照传统方法制作"

	// CategoryOther and CategoryHotDish are the generic and site-path
	// default category labels.
	CategoryOther   = "其他"
	CategoryHotDish = "热菜"

	// DefaultServings is the serving count when the source gives none.
	DefaultServings = 2

	// DefaultCookTime is the cook time (minutes) for structured-block
	// sections that carry no duration field.
	DefaultCookTime = 30
)

// Ingredient is one entry of a recipe's ingredient list.
// Quantity 0 with unit 适量 means an explicit "to taste" amount.
type Ingredient struct {
	IngredientID   string  `json:"ingredientId"`
	IngredientName string  `json:"ingredientName"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// Step is one ordered preparation step. Number is always a contiguous
// 1-based position assigned by the parser, never trusted from the source.
type Step struct {
	Number      int    `json:"step"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Recipe is the normalized output record for one dish.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    []string     `json:"category"`
	Image       string       `json:"image,omitempty"`
	Images      []string     `json:"images,omitempty"`
	Description string       `json:"description"`
	CookTime    int          `json:"cookTime"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`

	// Provenance metadata, carried through unchanged when present.
	Taste       string `json:"taste,omitempty"`
	Craft       string `json:"craft,omitempty"`
	RawDuration string `json:"time,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Tips        string `json:"tips,omitempty"`
	Cookware    string `json:"cookware,omitempty"`
}

// Decoder turns the raw bytes of one document into text, best effort.
// It never fails: a wrong guess yields garbled text that downstream
// extractors simply won't match.
type Decoder interface {
	Decode(raw []byte) string
}

// Extractor pulls a Recipe from decoded HTML. A nil result means the
// document yielded nothing usable and should be skipped.
type Extractor interface {
	Extract(html string) *Recipe
}

// Renderer converts the accepted recipe set into a final output format.
type Renderer interface {
	Render(recipes []Recipe) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json").
	Extension() string
}
