package handler

import (
	"errors"
	"strings"

	"pandavocab/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.handleHome(c)
}

// handleHome abandons any round or prompt and shows the main menu
func (h *Handler) handleHome(c tele.Context) error {
	s := h.session(c.Sender().ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	_, err := h.show(c, menuText(s.state.Mode), menuMarkup(s.state.Mode))
	return err
}

// handleMode switches between hanzi-pinyin and hanzi-meaning pairs
func (h *Handler) handleMode(c tele.Context) error {
	userID := c.Sender().ID
	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Mode = s.state.Mode.Toggle()
	h.logger.Info("Mode changed",
		zap.Int64("user_id", userID),
		zap.String("mode", string(s.state.Mode)),
	)

	_, err := h.show(c, menuText(s.state.Mode), menuMarkup(s.state.Mode))
	return err
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.State {
	case domain.StateWaitingSetName:
		sets, err := h.store(userID).Create(text)
		if errors.Is(err, domain.ErrEmptySetName) {
			return c.Send("Tên danh sách không được để trống. Nhập lại:", cancelMarkup())
		}
		if err != nil {
			h.logger.Error("Failed to create set",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send("Không thể lưu danh sách. Vui lòng thử lại sau.")
		}

		created := sets[0]
		h.logger.Info("Set created",
			zap.Int64("user_id", userID),
			zap.String("set_id", created.ID),
			zap.String("name", created.Name),
		)

		// Next step is usually the spreadsheet upload
		s.state = domain.StateData{
			State:       domain.StateWaitingImport,
			TargetSetID: created.ID,
			Mode:        s.state.Mode,
		}
		return c.Send("✅ Đã tạo danh sách \""+created.Name+"\".\n\n"+importPrompt, setMarkup(created))

	case domain.StateWaitingImport:
		return c.Send(importPrompt, cancelMarkup())

	default:
		return c.Send(menuText(s.state.Mode), menuMarkup(s.state.Mode))
	}
}
