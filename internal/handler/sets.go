package handler

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"pandavocab/internal/domain"
	"pandavocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const importPrompt = "📎 Gửi file Excel (.xlsx) với 3 cột: Hán tự, Pinyin, Nghĩa. Hàng đầu tiên là tiêu đề."

// handleSets shows a page of the chat's saved sets
func (h *Handler) handleSets(c tele.Context) error {
	userID := c.Sender().ID

	page := 1
	if data := c.Callback().Data; data != "" {
		if n, err := strconv.Atoi(data); err == nil {
			page = n
		}
	}

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	list := service.ListPage(h.store(userID), page)
	_, err := h.show(c, setsText(list), setsMarkup(list))
	return err
}

// handleNewSet asks for the name of a new set
func (h *Handler) handleNewSet(c tele.Context) error {
	s := h.session(c.Sender().ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.state.State = domain.StateWaitingSetName

	_, err := h.show(c, "✏️ Nhập tên danh sách mới:", cancelMarkup())
	return err
}

// handleSetView shows one set with its actions
func (h *Handler) handleSetView(c tele.Context) error {
	userID := c.Sender().ID

	set, err := h.store(userID).Get(c.Callback().Data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Không tìm thấy danh sách"})
	}

	_, err = h.show(c, setText(set), setMarkup(set))
	return err
}

// handleSetPlay starts a round from a saved set
func (h *Handler) handleSetPlay(c tele.Context) error {
	userID := c.Sender().ID
	setID := c.Callback().Data

	set, err := h.store(userID).Get(setID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Không tìm thấy danh sách"})
	}

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := domain.GameConfig{
		Source: domain.SourceSet,
		SetID:  setID,
		Mode:   s.state.Mode,
	}
	return h.playFresh(c, s, cfg, setTitle(set))
}

// handleSetImport waits for a spreadsheet for the chosen set
func (h *Handler) handleSetImport(c tele.Context) error {
	userID := c.Sender().ID
	setID := c.Callback().Data

	if _, err := h.store(userID).Get(setID); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Không tìm thấy danh sách"})
	}

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.state.State = domain.StateWaitingImport
	s.state.TargetSetID = setID

	_, err := h.show(c, importPrompt, cancelMarkup())
	return err
}

// handleSetDelete removes a set and returns to the list
func (h *Handler) handleSetDelete(c tele.Context) error {
	userID := c.Sender().ID
	setID := c.Callback().Data
	store := h.store(userID)

	if _, err := store.Delete(setID); err != nil {
		h.logger.Error("Failed to delete set",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("set_id", setID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Không thể xóa danh sách"})
	}

	h.logger.Info("Set deleted",
		zap.Int64("user_id", userID),
		zap.String("set_id", setID),
	)

	list := service.ListPage(store, 1)
	_, err := h.show(c, "🗑 Đã xóa danh sách.\n\n"+setsText(list), setsMarkup(list))
	return err
}

// handleDocument imports an uploaded spreadsheet into the waiting set
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID
	doc := c.Message().Document

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.State != domain.StateWaitingImport || s.state.TargetSetID == "" {
		return c.Send("Hãy chọn danh sách trước khi gửi file: 📚 Danh sách của tôi → 📎 Nhập Excel.", menuMarkup(s.state.Mode))
	}
	if doc == nil || !strings.EqualFold(filepath.Ext(doc.FileName), ".xlsx") {
		return c.Send("Chỉ hỗ trợ file .xlsx.\n\n"+importPrompt, cancelMarkup())
	}

	reader, err := h.bot.File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("file_id", doc.FileID),
		)
		return c.Send("Không thể tải file. Vui lòng thử lại.")
	}
	defer reader.Close()

	result, err := h.imports.Import(h.store(userID), s.state.TargetSetID, reader)
	switch {
	case errors.Is(err, domain.ErrImportInvalid):
		return c.Send(userMessage(err, domain.ErrImportInvalid), cancelMarkup())
	case errors.Is(err, domain.ErrSetNotFound):
		s.resetLocked()
		return c.Send("Không tìm thấy danh sách", menuMarkup(s.state.Mode))
	case err != nil:
		h.logger.Error("Failed to import document",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Không thể lưu dữ liệu. Vui lòng thử lại sau.")
	}

	s.resetLocked()
	return c.Send("✅ "+result.Message()+"\n\n"+setText(result.Set), setMarkup(result.Set))
}

// userMessage strips the sentinel prefix from a wrapped error
func userMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
