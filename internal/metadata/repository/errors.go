package repository

import "errors"

var (
	ErrCacheMiss         = errors.New("repository: vocabulary cache miss")
	ErrVocabularyQuery   = errors.New("repository: failed to query vocabularies")
	ErrVocabularyEncoded = errors.New("repository: failed to encode vocabularies")
)
