package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback splits cleaned "unique|payload" data
func parseCallback(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(cleanCallbackData(data), "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The board was already redrawn by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the callback's message in place, or sends a new one. It returns
// the message now carrying the content.
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) (*tele.Message, error) {
	userID := c.Sender().ID

	if c.Callback() != nil && c.Message() != nil {
		err := c.Edit(text, markup)
		if err == nil {
			return c.Message(), c.Respond()
		}
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return c.Message(), nil
		}
	}

	return c.Bot().Send(c.Recipient(), text, markup)
}

// alert answers a callback with a popup, or sends text for plain messages
func alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// handleCallback handles callback queries no registered button matched
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := parseCallback(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("payload", payload),
		zap.String("data_raw", callback.Data),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Restore the payload the way a matched button handler would see it
	callback.Unique = unique
	callback.Data = payload

	switch unique {
	case btnHome.Unique:
		return h.handleHome(c)
	case btnMode.Unique:
		return h.handleMode(c)
	case btnLevel.Unique:
		return h.handleLevel(c)
	case btnCard.Unique:
		return h.handleCard(c)
	case btnNext.Unique:
		return h.handleNext(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	case btnSets.Unique, btnSetsPage.Unique:
		return h.handleSets(c)
	case btnNewSet.Unique:
		return h.handleNewSet(c)
	case btnSetView.Unique:
		return h.handleSetView(c)
	case btnSetPlay.Unique:
		return h.handleSetPlay(c)
	case btnSetImport.Unique:
		return h.handleSetImport(c)
	case btnSetDelete.Unique:
		return h.handleSetDelete(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", callback.Data),
		zap.String("unique", unique),
	)
	return c.Respond()
}
