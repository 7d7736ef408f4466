package handler

import (
	"fmt"
	"strconv"
	"strings"

	"pandavocab/internal/domain"
	"pandavocab/internal/service"

	tele "gopkg.in/telebot.v3"
)

const (
	boardColumns  = 4
	levelColumns  = 3
	previewLength = 10
)

// modeLabel names a game mode for the player
func modeLabel(mode domain.Mode) string {
	if mode == domain.ModeHanziMeaning {
		return "Hán tự ↔ Nghĩa"
	}
	return "Hán tự ↔ Pinyin"
}

func menuText(mode domain.Mode) string {
	return fmt.Sprintf("🐼 PandaVocab\n\nChọn cấp độ HSK hoặc danh sách từ của bạn.\nChế độ: %s", modeLabel(mode))
}

// menuMarkup returns the main menu keyboard
func menuMarkup(mode domain.Mode) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	var row tele.Row
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		row = append(row, menu.Data(fmt.Sprintf("HSK %d", level), btnLevel.Unique, strconv.Itoa(level)))
		if len(row) == levelColumns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	toggle := btnMode
	toggle.Text = "🔁 Chế độ: " + modeLabel(mode.Toggle())
	rows = append(rows,
		menu.Row(btnSets),
		menu.Row(btnNewSet),
		menu.Row(toggle),
	)

	menu.Inline(rows...)
	return menu
}

// cardLabel renders a card as button text
func cardLabel(card domain.Card) string {
	switch card.State {
	case domain.CardMatched:
		return "✅"
	case domain.CardSelected:
		return "🔵 " + card.Content
	case domain.CardErrored:
		return "❌ " + card.Content
	}
	return card.Content
}

func boardText(title string, mode domain.Mode, matched, total int) string {
	return fmt.Sprintf("%s · %s\n\nĐiểm: %d / %d", title, modeLabel(mode), matched, total)
}

// boardMarkup lays the cards out four per row
func boardMarkup(cards []domain.Card) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	var row tele.Row
	for _, card := range cards {
		row = append(row, markup.Data(cardLabel(card), btnCard.Unique, card.ID))
		if len(row) == boardColumns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnRestart, btnHome))

	markup.Inline(rows...)
	return markup
}

func winText(title string, pairs int) string {
	return fmt.Sprintf("🐼🎉 Tuyệt vời!\n\nBạn đã ghép đúng tất cả %d cặp từ (%s).", pairs, title)
}

func winMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnNext),
		markup.Row(btnRestart),
		markup.Row(btnHome),
	)
	return markup
}

func levelTitle(level int) string {
	return fmt.Sprintf("🀄 HSK %d", level)
}

func setTitle(set domain.VocabularySet) string {
	return "📚 " + set.Name
}

func setsText(page service.SetPage) string {
	if len(page.Sets) == 0 {
		return "📚 Bạn chưa có danh sách nào.\n\nTạo danh sách mới rồi gửi file Excel để thêm từ."
	}
	return fmt.Sprintf("📚 Danh sách của bạn (trang %d/%d):", page.Page, page.TotalPages)
}

func setsMarkup(page service.SetPage) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, set := range page.Sets {
		text := fmt.Sprintf("%s (%d)", set.Name, len(set.Items))
		rows = append(rows, markup.Row(markup.Data(text, btnSetView.Unique, set.ID)))
	}

	navRow := tele.Row{}
	if page.HasPrev() {
		navRow = append(navRow, markup.Data("⬅️", btnSetsPage.Unique, strconv.Itoa(page.Page-1)))
	}
	if page.HasNext() {
		navRow = append(navRow, markup.Data("➡️", btnSetsPage.Unique, strconv.Itoa(page.Page+1)))
	}
	if len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnNewSet), markup.Row(btnHome))
	markup.Inline(rows...)
	return markup
}

// setText shows a set with a preview of its first words
func setText(set domain.VocabularySet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s\nSố từ: %d\n", set.Name, len(set.Items))

	if len(set.Items) == 0 {
		b.WriteString("\nDanh sách đang trống. Gửi file Excel (.xlsx) với 3 cột: Hán tự, Pinyin, Nghĩa.")
		return b.String()
	}

	b.WriteString("\n")
	for i, item := range set.Items {
		if i == previewLength {
			fmt.Fprintf(&b, "… và %d từ khác\n", len(set.Items)-previewLength)
			break
		}
		fmt.Fprintf(&b, "%d. %s (%s) — %s\n", i+1, item.Hanzi, item.Pinyin, item.Meaning)
	}
	if !service.Playable(set) {
		fmt.Fprintf(&b, "\nCần ít nhất %d từ để chơi.", domain.MinPlayable)
	}
	return b.String()
}

func setMarkup(set domain.VocabularySet) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if service.Playable(set) {
		rows = append(rows, markup.Row(markup.Data("▶️ Chơi", btnSetPlay.Unique, set.ID)))
	}
	rows = append(rows,
		markup.Row(markup.Data("📎 Nhập Excel", btnSetImport.Unique, set.ID)),
		markup.Row(markup.Data("🗑 Xóa", btnSetDelete.Unique, set.ID)),
		markup.Row(btnSets, btnHome),
	)

	markup.Inline(rows...)
	return markup
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	cancel := btnHome
	cancel.Text = "❌ Hủy"
	markup.Inline(markup.Row(cancel))
	return markup
}
