package service

import (
	"fmt"
	"io"

	"pandavocab/internal/domain"

	"go.uber.org/zap"
)

// EntryParser reads entries from an uploaded file
type EntryParser interface {
	ParseXLSX(r io.Reader) ([]domain.VocabularyEntry, error)
}

// ImportResult summarizes a successful import
type ImportResult struct {
	Set      domain.VocabularySet
	Imported int
	Sets     []domain.VocabularySet
}

// Message is the confirmation shown to the user
func (r ImportResult) Message() string {
	return fmt.Sprintf("Đã nhập thành công %d từ vào danh sách \"%s\".", r.Imported, r.Set.Name)
}

// ImportService parses spreadsheets and merges them into a set
type ImportService struct {
	parser EntryParser
	logger *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(parser EntryParser, logger *zap.Logger) *ImportService {
	return &ImportService{
		parser: parser,
		logger: logger,
	}
}

// Import merges the spreadsheet in r into the set. The set is untouched when
// the file yields no entries.
func (s *ImportService) Import(store *SetStore, setID string, r io.Reader) (ImportResult, error) {
	if _, err := store.Get(setID); err != nil {
		return ImportResult{}, err
	}

	entries, err := s.parser.ParseXLSX(r)
	if err != nil {
		s.logger.Warn("Spreadsheet rejected", zap.String("set_id", setID), zap.Error(err))
		return ImportResult{}, err
	}
	if len(entries) == 0 {
		return ImportResult{}, fmt.Errorf("%w: file contains no entries", domain.ErrImportInvalid)
	}

	sets, err := store.Merge(setID, entries)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Imported: len(entries), Sets: sets}
	for _, set := range sets {
		if set.ID == setID {
			result.Set = set
			break
		}
	}
	return result, nil
}
