package repository

type ListVocabularyItemsOptions struct {
	VocabularyIDs []string
	ActiveOnly    bool
}
