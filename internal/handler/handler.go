package handler

import (
	"sync"
	"time"

	"pandavocab/internal/domain"
	"pandavocab/internal/game"
	"pandavocab/internal/repository"
	"pandavocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// vocabTimeout bounds a single vocabulary request, generator retries included
const vocabTimeout = 45 * time.Second

// messageEditor is the part of *tele.Bot used outside a request context
type messageEditor interface {
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	editor  messageEditor
	kv      repository.KVStore
	rounds  *service.RoundService
	imports *service.ImportService
	logger  *zap.Logger

	mismatchDelay time.Duration
	scheduler     game.Scheduler

	// One session per chat, guarded by its own lock
	sessions   map[int64]*session
	sessionMux sync.Mutex
}

// session is the per-chat state machine
type session struct {
	mu sync.Mutex

	state   domain.StateData
	config  domain.GameConfig
	title   string
	engine  *game.Engine
	entries []domain.VocabularyEntry
	board   *tele.Message
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	kv repository.KVStore,
	rounds *service.RoundService,
	imports *service.ImportService,
	mismatchDelay time.Duration,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:           bot,
		kv:            kv,
		rounds:        rounds,
		imports:       imports,
		logger:        logger,
		mismatchDelay: mismatchDelay,
		scheduler:     game.RealScheduler,
		sessions:      make(map[int64]*session),
	}
	if bot != nil {
		h.editor = bot
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnHome, h.handleHome)
	h.bot.Handle(&btnMode, h.handleMode)
	h.bot.Handle(&btnLevel, h.handleLevel)
	h.bot.Handle(&btnCard, h.handleCard)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnRestart, h.handleRestart)
	h.bot.Handle(&btnSets, h.handleSets)
	h.bot.Handle(&btnSetsPage, h.handleSets)
	h.bot.Handle(&btnNewSet, h.handleNewSet)
	h.bot.Handle(&btnSetView, h.handleSetView)
	h.bot.Handle(&btnSetPlay, h.handleSetPlay)
	h.bot.Handle(&btnSetImport, h.handleSetImport)
	h.bot.Handle(&btnSetDelete, h.handleSetDelete)

	// Generic callback handler for data that didn't match a button
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// session returns the chat's session, creating it on first use
func (h *Handler) session(userID int64) *session {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	s, ok := h.sessions[userID]
	if !ok {
		s = &session{state: domain.StateData{State: domain.StateIdle, Mode: domain.ModeHanziPinyin}}
		s.engine = game.NewEngine(game.Options{
			MismatchDelay: h.mismatchDelay,
			Scheduler:     h.scheduler,
			OnComplete: func(pairs int) {
				h.logger.Info("Round completed",
					zap.Int64("user_id", userID),
					zap.Int("pairs", pairs),
				)
			},
			OnMismatchReset: func() {
				h.redrawBoard(userID)
			},
		})
		h.sessions[userID] = s
	}
	return s
}

// store returns the set store of a chat
func (h *Handler) store(userID int64) *service.SetStore {
	return service.NewSetStore(h.kv, service.UserStorageKey(userID), h.logger)
}

// resetLocked returns the session to idle, keeping the chosen mode
func (s *session) resetLocked() {
	s.engine.Close()
	s.state = domain.StateData{State: domain.StateIdle, Mode: s.state.Mode}
	s.board = nil
}

// Inline keyboard buttons
var (
	btnHome = tele.Btn{
		Unique: "menu",
		Text:   "🏠 Trang chủ",
	}
	btnMode = tele.Btn{
		Unique: "mode",
	}
	btnLevel = tele.Btn{
		Unique: "hsk",
	}
	btnCard = tele.Btn{
		Unique: "card",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Từ mới",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "🔄 Chơi lại",
	}
	btnSets = tele.Btn{
		Unique: "sets",
		Text:   "📚 Danh sách của tôi",
	}
	btnSetsPage = tele.Btn{
		Unique: "sets_page",
	}
	btnNewSet = tele.Btn{
		Unique: "new_set",
		Text:   "➕ Tạo danh sách",
	}
	btnSetView = tele.Btn{
		Unique: "set",
	}
	btnSetPlay = tele.Btn{
		Unique: "set_play",
	}
	btnSetImport = tele.Btn{
		Unique: "set_import",
	}
	btnSetDelete = tele.Btn{
		Unique: "set_delete",
	}
)
