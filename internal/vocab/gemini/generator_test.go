package gemini

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"pandavocab/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	responses []*genai.GenerateContentResponse
	errs      []error
	calls     int
	lastModel string
	lastCfg   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	i := f.calls
	f.calls++
	f.lastModel = model
	f.lastCfg = cfg
	var resp *genai.GenerateContentResponse
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGenerator(models contentGenerator, retries uint) *Generator {
	g := newGenerator(models, Config{MaxRetries: retries, RetryDelay: time.Millisecond}, zap.NewNop())
	n := 0
	g.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return g
}

func TestGenerator_Generate(t *testing.T) {
	models := &fakeModels{responses: []*genai.GenerateContentResponse{
		textResponse(`[
			{"hanzi":"你好","pinyin":"nǐ hǎo","meaning":"Xin chào"},
			{"hanzi":" 谢谢 ","pinyin":"xiè xie","meaning":"Cảm ơn"},
			{"hanzi":"你好","pinyin":"nǐ hǎo","meaning":"duplicate"},
			{"hanzi":"再见","pinyin":"","meaning":"Tạm biệt"},
			{"hanzi":"茶","pinyin":"chá","meaning":"Trà"},
			{"hanzi":"水","pinyin":"shuǐ","meaning":"Nước"}
		]`),
	}}
	g := newTestGenerator(models, 0)

	entries, err := g.Generate(context.Background(), 1, 4)

	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, domain.VocabularyEntry{ID: "gen-1", Hanzi: "你好", Pinyin: "nǐ hǎo", Meaning: "Xin chào"}, entries[0])
	assert.Equal(t, "谢谢", entries[1].Hanzi)
	assert.Equal(t, "茶", entries[2].Hanzi)
	assert.Equal(t, "水", entries[3].Hanzi)
	assert.Equal(t, DefaultModel, models.lastModel)
	assert.Equal(t, "application/json", models.lastCfg.ResponseMIMEType)
	assert.Equal(t, genai.TypeArray, models.lastCfg.ResponseSchema.Type)
}

func TestGenerator_TruncatesToCount(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf(`{"hanzi":"字%d","pinyin":"zi","meaning":"chữ"}`, i))
	}
	models := &fakeModels{responses: []*genai.GenerateContentResponse{
		textResponse("[" + strings.Join(words, ",") + "]"),
	}}
	g := newTestGenerator(models, 0)

	entries, err := g.Generate(context.Background(), 2, 8)

	require.NoError(t, err)
	assert.Len(t, entries, 8)
	assert.Equal(t, "字0", entries[0].Hanzi)
}

func TestGenerator_RetriesTransientErrors(t *testing.T) {
	models := &fakeModels{
		errs:      []error{fmt.Errorf("503 unavailable"), nil},
		responses: []*genai.GenerateContentResponse{nil, textResponse(`[{"hanzi":"茶","pinyin":"chá","meaning":"Trà"}]`)},
	}
	g := newTestGenerator(models, 2)

	entries, err := g.Generate(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, models.calls)
}

func TestGenerator_PermanentErrors(t *testing.T) {
	tests := []struct {
		name     string
		response *genai.GenerateContentResponse
		expected error
	}{
		{
			name:     "malformed json",
			response: textResponse(`not json`),
			expected: ErrInvalidResponse,
		},
		{
			name:     "no candidates",
			response: &genai.GenerateContentResponse{},
			expected: ErrInvalidResponse,
		},
		{
			name: "blocked",
			response: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
			}}},
			expected: ErrContentBlocked,
		},
		{
			name:     "empty list",
			response: textResponse(`[]`),
			expected: ErrInvalidResponse,
		},
		{
			name: "too few words for a board",
			response: textResponse(`[
				{"hanzi":"茶","pinyin":"chá","meaning":"Trà"},
				{"hanzi":"水","pinyin":"shuǐ","meaning":"Nước"},
				{"hanzi":"茶","pinyin":"chá","meaning":"Trà"}
			]`),
			expected: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models := &fakeModels{responses: []*genai.GenerateContentResponse{tt.response, tt.response, tt.response}}
			g := newTestGenerator(models, 2)

			entries, err := g.Generate(context.Background(), 3, 8)

			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, entries)
			assert.Equal(t, 1, models.calls)
		})
	}
}

func TestGenerator_InvalidLevel(t *testing.T) {
	g := newTestGenerator(&fakeModels{}, 0)

	_, err := g.Generate(context.Background(), 10, 8)

	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestNewGenerator_RequiresKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{}, zap.NewNop())

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPrompts(t *testing.T) {
	assert.Contains(t, userPrompt(3, 8), "HSK 3")
	assert.Contains(t, userPrompt(3, 8), "Tạo 8 từ")
	assert.Contains(t, systemInstruction(5), "HSK 5")
}
