// Package importer reads vocabulary from user-supplied spreadsheets.
//
// The expected layout is a header row followed by one word per row with
// three columns: hanzi, pinyin, meaning. Rows missing any of the three are
// skipped without error.
package importer

import (
	"fmt"
	"io"
	"strings"

	"pandavocab/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Parser turns spreadsheet rows into vocabulary entries
type Parser struct {
	validate *validator.Validate
	newID    func() string
}

// NewParser creates a parser
func NewParser() *Parser {
	return &Parser{
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

// ParseXLSX reads the first sheet of an .xlsx workbook
func (p *Parser) ParseXLSX(r io.Reader) ([]domain.VocabularyEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: Lỗi khi đọc file Excel. Vui lòng kiểm tra định dạng file: %v", domain.ErrImportInvalid, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: File Excel không có trang tính nào", domain.ErrImportInvalid)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: Lỗi khi đọc file Excel: %v", domain.ErrImportInvalid, err)
	}

	return p.ParseRows(rows)
}

// ParseRows converts raw rows, the first of which is a header
func (p *Parser) ParseRows(rows [][]string) ([]domain.VocabularyEntry, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: File Excel phải có ít nhất 1 hàng dữ liệu (ngoài header)", domain.ErrImportInvalid)
	}

	entries := make([]domain.VocabularyEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		entry := domain.VocabularyEntry{
			ID:      p.newID(),
			Hanzi:   strings.TrimSpace(row[0]),
			Pinyin:  strings.TrimSpace(row[1]),
			Meaning: strings.TrimSpace(row[2]),
		}
		if err := p.validate.Struct(entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: Không tìm thấy dữ liệu hợp lệ trong file. Đảm bảo file có 3 cột: Hán tự, Pinyin, Nghĩa", domain.ErrImportInvalid)
	}
	return entries, nil
}
