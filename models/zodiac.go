package models

// ZodiacSign is static reference content served to the horoscope pages.
type ZodiacSign struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Symbol        string   `json:"symbol"`
	Element       string   `json:"element"`
	Dates         string   `json:"dates"`
	Traits        []string `json:"traits"`
	Compatibility []string `json:"compatibility"`
	LuckyStone    string   `json:"luckyStone"`
}
