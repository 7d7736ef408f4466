package handler

import (
	"context"
	"errors"
	"strconv"

	"pandavocab/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLevel starts an HSK round
func (h *Handler) handleLevel(c tele.Context) error {
	userID := c.Sender().ID

	level, err := strconv.Atoi(c.Callback().Data)
	if err != nil || !domain.ValidLevel(level) {
		return c.Respond(&tele.CallbackResponse{Text: "Cấp độ không hợp lệ"})
	}

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := domain.GameConfig{
		Source: domain.SourceHSK,
		Level:  level,
		Mode:   s.state.Mode,
	}
	return h.playFresh(c, s, cfg, levelTitle(level))
}

// handleCard applies a card tap to the running round
func (h *Handler) handleCard(c tele.Context) error {
	userID := c.Sender().ID
	cardID := c.Callback().Data

	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.State != domain.StatePlaying || !s.onBoard(c.Message()) {
		return c.Respond(&tele.CallbackResponse{Text: "Ván chơi đã kết thúc"})
	}

	outcome, err := s.engine.SelectCard(cardID)
	switch {
	case errors.Is(err, domain.ErrMismatchPending):
		return c.Respond()
	case errors.Is(err, domain.ErrCardMatched):
		return c.Respond(&tele.CallbackResponse{Text: "Cặp này đã được ghép"})
	case errors.Is(err, domain.ErrCardNotFound):
		return c.Respond(&tele.CallbackResponse{Text: "Ván chơi đã kết thúc"})
	case err != nil:
		h.logger.Error("Failed to select card", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Đã xảy ra lỗi"})
	}

	h.logger.Debug("Card selected",
		zap.Int64("user_id", userID),
		zap.String("card_id", cardID),
		zap.Stringer("outcome", outcome),
	)

	if s.engine.Complete() {
		board, err := h.show(c, winText(s.title, s.engine.TotalPairs()), winMarkup())
		s.board = board
		return err
	}

	board, err := h.show(c, h.boardTextLocked(s), boardMarkup(s.engine.Cards()))
	s.board = board
	return err
}

// handleNext starts another round from the same source with fresh words
func (h *Handler) handleNext(c tele.Context) error {
	s := h.session(c.Sender().ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Source == "" {
		s.resetLocked()
		_, err := h.show(c, menuText(s.state.Mode), menuMarkup(s.state.Mode))
		return err
	}
	return h.playFresh(c, s, s.config, s.title)
}

// handleRestart reshuffles the same word list
func (h *Handler) handleRestart(c tele.Context) error {
	s := h.session(c.Sender().ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		s.resetLocked()
		_, err := h.show(c, menuText(s.state.Mode), menuMarkup(s.state.Mode))
		return err
	}
	return h.playLocked(c, s, s.config, s.title, s.entries)
}

// playFresh loads new vocabulary for cfg and starts a round with it
func (h *Handler) playFresh(c tele.Context, s *session, cfg domain.GameConfig, title string) error {
	userID := c.Sender().ID

	ctx, cancel := context.WithTimeout(context.Background(), vocabTimeout)
	defer cancel()

	result, err := h.rounds.Vocabulary(ctx, h.store(userID), cfg)
	switch {
	case errors.Is(err, domain.ErrInsufficientVocabulary):
		return alert(c, "Cần ít nhất 4 từ để bắt đầu trò chơi")
	case errors.Is(err, domain.ErrSetNotFound):
		return alert(c, "Không tìm thấy danh sách")
	case err != nil:
		h.logger.Error("Failed to load vocabulary",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("source", string(cfg.Source)),
		)
		return alert(c, "Không thể tải từ vựng. Vui lòng thử lại sau.")
	}

	if result.Fallback {
		if err := c.Send("⚠️ Không thể tạo từ mới lúc này, đang dùng bộ từ có sẵn."); err != nil {
			h.logger.Warn("Failed to send fallback notice", zap.Error(err))
		}
	}

	return h.playLocked(c, s, cfg, title, result.Entries)
}

// playLocked deals a new board. s.mu must be held.
func (h *Handler) playLocked(c tele.Context, s *session, cfg domain.GameConfig, title string, entries []domain.VocabularyEntry) error {
	userID := c.Sender().ID

	if err := s.engine.Initialize(entries, cfg.Mode); err != nil {
		h.logger.Error("Failed to initialize round", zap.Error(err), zap.Int64("user_id", userID))
		return alert(c, "Không thể bắt đầu trò chơi")
	}

	s.config = cfg
	s.title = title
	s.entries = entries
	s.state = domain.StateData{State: domain.StatePlaying, Mode: s.state.Mode}

	h.logger.Info("Round started",
		zap.Int64("user_id", userID),
		zap.String("source", string(cfg.Source)),
		zap.Int("level", cfg.Level),
		zap.String("set_id", cfg.SetID),
		zap.Int("pairs", len(entries)),
	)

	board, err := h.show(c, h.boardTextLocked(s), boardMarkup(s.engine.Cards()))
	s.board = board
	return err
}

// onBoard reports whether msg is the message showing the current round.
// Taps on older boards carry the same card ids after a restart.
func (s *session) onBoard(msg *tele.Message) bool {
	if s.board == nil || msg == nil {
		return true
	}
	return msg.ID == s.board.ID
}

func (h *Handler) boardTextLocked(s *session) string {
	return boardText(s.title, s.config.Mode, s.engine.MatchedPairs(), s.engine.TotalPairs())
}

// redrawBoard runs after a mismatch is cleared, outside any request
func (h *Handler) redrawBoard(userID int64) {
	s := h.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.State != domain.StatePlaying || s.board == nil || h.editor == nil {
		return
	}

	_, err := h.editor.Edit(s.board, h.boardTextLocked(s), boardMarkup(s.engine.Cards()))
	if err != nil {
		h.logger.Warn("Failed to redraw board",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}
}
