package model

// VocabularyCategories is the controlled vocabulary holding story categories.
const VocabularyCategories = "categories"

// VocabularyItem is one entry of a controlled vocabulary.
type VocabularyItem struct {
	QCode    string `json:"qcode"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
