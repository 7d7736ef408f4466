// Package gemini generates HSK vocabulary with Google's Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pandavocab/internal/domain"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrInvalidConfig is returned when the generator cannot be built
	ErrInvalidConfig = errors.New("invalid gemini configuration")

	// ErrInvalidResponse is returned when the model answered with unusable content.
	// It is not retried.
	ErrInvalidResponse = errors.New("invalid gemini response")

	// ErrContentBlocked is returned when safety filters blocked the answer
	ErrContentBlocked = errors.New("content blocked by safety filters")
)

// Config holds generator settings
type Config struct {
	APIKey     string
	Model      string
	MaxRetries uint
	RetryDelay time.Duration
}

// contentGenerator is the subset of *genai.Models the generator needs
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator implements vocab.Generator
type Generator struct {
	models contentGenerator
	config Config
	logger *zap.Logger
	newID  func() string
}

// NewGenerator connects a Gemini client
func NewGenerator(ctx context.Context, cfg Config, logger *zap.Logger) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInvalidConfig, err)
	}

	return newGenerator(client.Models, cfg, logger), nil
}

func newGenerator(models contentGenerator, cfg Config, logger *zap.Logger) *Generator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Generator{
		models: models,
		config: cfg,
		logger: logger,
		newID:  uuid.NewString,
	}
}

type wordSchema struct {
	Hanzi   string `json:"hanzi"`
	Pinyin  string `json:"pinyin"`
	Meaning string `json:"meaning"`
}

// Generate asks the model for count distinct words of an HSK level
func (g *Generator) Generate(ctx context.Context, level, count int) ([]domain.VocabularyEntry, error) {
	if !domain.ValidLevel(level) {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidLevel, level)
	}
	if count <= 0 {
		count = domain.DefaultCount
	}

	var words []wordSchema
	attempts := g.config.MaxRetries + 1

	err := retry.Do(
		func() error {
			var callErr error
			words, callErr = g.call(ctx, level, count)
			return callErr
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(g.config.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrInvalidResponse) && !errors.Is(err, ErrContentBlocked)
		}),
		retry.OnRetry(func(n uint, err error) {
			g.logger.Warn("Retrying Gemini call",
				zap.Uint("attempt", n+1),
				zap.Int("level", level),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.VocabularyEntry, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if len(entries) == count {
			break
		}
		entry := domain.VocabularyEntry{
			ID:      g.newID(),
			Hanzi:   strings.TrimSpace(w.Hanzi),
			Pinyin:  strings.TrimSpace(w.Pinyin),
			Meaning: strings.TrimSpace(w.Meaning),
		}
		if entry.Hanzi == "" || entry.Pinyin == "" || entry.Meaning == "" || seen[entry.Hanzi] {
			continue
		}
		seen[entry.Hanzi] = true
		entries = append(entries, entry)
	}

	// too few words cannot fill a board
	need := domain.MinPlayable
	if count < need {
		need = count
	}
	if len(entries) < need {
		return nil, fmt.Errorf("%w: %d usable words, need %d", ErrInvalidResponse, len(entries), need)
	}

	g.logger.Info("Vocabulary generated",
		zap.Int("level", level),
		zap.Int("requested", count),
		zap.Int("received", len(entries)),
	)
	return entries, nil
}

func (g *Generator) call(ctx context.Context, level, count int) ([]wordSchema, error) {
	resp, err := g.models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt(level, count)), requestConfig(level))
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, ErrContentBlocked
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	var words []wordSchema
	if err := json.Unmarshal([]byte(text.String()), &words); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return words, nil
}

func systemInstruction(level int) string {
	return fmt.Sprintf(`Bạn là một giáo viên dạy tiếng Trung nhiệt tình cho người Việt Nam.
Hãy tạo danh sách từ vựng duy nhất cho cấp độ HSK %d.
Kết quả trả về phải là một mảng JSON hợp lệ.`, level)
}

func userPrompt(level, count int) string {
	return fmt.Sprintf(`Tạo %d từ tiếng Trung ngẫu nhiên và khác nhau cho trình độ HSK %d.
Bao gồm: hanzi (Chữ Hán), pinyin (Phiên âm), và meaning (Nghĩa tiếng Việt chuẩn xác).`, count, level)
}

func requestConfig(level int) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction(level)}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hanzi":   {Type: genai.TypeString},
					"pinyin":  {Type: genai.TypeString},
					"meaning": {Type: genai.TypeString, Description: "Nghĩa tiếng Việt"},
				},
				Required: []string{"hanzi", "pinyin", "meaning"},
			},
		},
	}
}
