package handler

import (
	"strings"
	"testing"

	"pandavocab/internal/domain"
	"pandavocab/internal/service"
	"pandavocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardLabel(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.CardState
		expected string
	}{
		{name: "face up", state: domain.CardFaceUp, expected: "你好"},
		{name: "selected", state: domain.CardSelected, expected: "🔵 你好"},
		{name: "errored", state: domain.CardErrored, expected: "❌ 你好"},
		{name: "matched", state: domain.CardMatched, expected: "✅"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := domain.Card{ID: "v1-hanzi", Content: "你好", State: tt.state}
			assert.Equal(t, tt.expected, cardLabel(card))
		})
	}
}

func TestBoardMarkup(t *testing.T) {
	cards := make([]domain.Card, 10)
	for i := range cards {
		cards[i] = domain.Card{ID: domain.CardID("v", domain.FacetHanzi), Content: "字"}
	}

	markup := boardMarkup(cards)

	// 4 + 4 + 2 cards, then the controls
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Len(t, markup.InlineKeyboard[0], 4)
	assert.Len(t, markup.InlineKeyboard[2], 2)
	assert.Equal(t, btnCard.Unique, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "v-hanzi", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, btnRestart.Unique, markup.InlineKeyboard[3][0].Unique)
	assert.Equal(t, btnHome.Unique, markup.InlineKeyboard[3][1].Unique)
}

func TestBoardText(t *testing.T) {
	text := boardText(levelTitle(3), domain.ModeHanziMeaning, 2, 8)

	assert.Contains(t, text, "HSK 3")
	assert.Contains(t, text, "Hán tự ↔ Nghĩa")
	assert.Contains(t, text, "Điểm: 2 / 8")
}

func TestMenuMarkup(t *testing.T) {
	markup := menuMarkup(domain.ModeHanziPinyin)

	// 3 rows of levels, sets, new set, mode
	require.Len(t, markup.InlineKeyboard, 6)
	assert.Equal(t, "HSK 1", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "9", markup.InlineKeyboard[2][2].Data)
	assert.Equal(t, btnMode.Unique, markup.InlineKeyboard[5][0].Unique)
	assert.Contains(t, markup.InlineKeyboard[5][0].Text, "Hán tự ↔ Nghĩa")
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		contains []string
		excludes []string
	}{
		{
			name:     "empty set",
			items:    0,
			contains: []string{"Số từ: 0", "trống"},
		},
		{
			name:     "too small to play",
			items:    2,
			contains: []string{"1. 词0 (ci0) — từ 0", "Cần ít nhất 4 từ"},
		},
		{
			name:     "preview is truncated",
			items:    15,
			contains: []string{"10. 词9", "… và 5 từ khác"},
			excludes: []string{"11. ", "Cần ít nhất"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := testutil.NewTestSet("s1", "Ôn tập", testutil.NewTestEntries(tt.items)...)
			text := setText(set)

			assert.True(t, strings.HasPrefix(text, "📚 Ôn tập"))
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, text, s)
			}
		})
	}
}

func TestSetMarkup_PlayOnlyWhenPlayable(t *testing.T) {
	small := setMarkup(testutil.NewTestSet("s1", "Small", testutil.NewTestEntries(3)...))
	big := setMarkup(testutil.NewTestSet("s2", "Big", testutil.NewTestEntries(4)...))

	assert.Equal(t, btnSetImport.Unique, small.InlineKeyboard[0][0].Unique)
	assert.Equal(t, btnSetPlay.Unique, big.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "s2", big.InlineKeyboard[0][0].Data)
}

func TestSetsMarkup_Navigation(t *testing.T) {
	page := service.SetPage{
		Sets:       []domain.VocabularySet{testutil.NewTestSet("a", "A")},
		Page:       2,
		TotalPages: 3,
	}

	markup := setsMarkup(page)

	require.Len(t, markup.InlineKeyboard, 4)
	nav := markup.InlineKeyboard[1]
	require.Len(t, nav, 2)
	assert.Equal(t, "1", nav[0].Data)
	assert.Equal(t, "3", nav[1].Data)
	assert.Contains(t, setsText(page), "trang 2/3")
}

func TestWinText(t *testing.T) {
	text := winText(levelTitle(1), 8)

	assert.True(t, strings.HasPrefix(text, "🐼🎉 Tuyệt vời!"))
	assert.Contains(t, text, "8 cặp")
}
