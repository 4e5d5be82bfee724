package handler

import (
	"sync"

	"vocabcards/internal/domain"
	"vocabcards/internal/middleware"
	"vocabcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	studyService   *service.StudyService
	catalogService *service.CatalogService
	imageBaseURL   string
	logger         *zap.Logger

	// Per-chat presentation state; study sessions live in studyService
	states   map[int64]*domain.ChatState
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	studyService *service.StudyService,
	catalogService *service.CatalogService,
	imageBaseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		studyService:   studyService,
		catalogService: catalogService,
		imageBaseURL:   imageBaseURL,
		logger:         logger,
		states:         make(map[int64]*domain.ChatState),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: greeting and password entry
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Everything else requires a passed password
	study := h.bot.Group()
	study.Use(middleware.AuthMiddleware(h.authService, h.logger))

	study.Handle("/sets", h.handleSets)
	study.Handle("/next", h.handleNext)
	study.Handle("/prev", h.handlePrev)
	study.Handle("/flip", h.handleFlip)
	study.Handle("/theme", h.handleTheme)

	// Callback queries (inline buttons)
	study.Handle(&btnNext, h.handleNext)
	study.Handle(&btnPrev, h.handlePrev)
	study.Handle(&btnFlip, h.handleFlip)
	study.Handle(&btnSets, h.handleSets)
	study.Handle(&btnTheme, h.handleTheme)
	study.Handle(&btnHome, h.handleSets)

	// Generic callback handler for dynamic data
	study.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns chat's current state
func (h *Handler) GetState(userID int64) *domain.ChatState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.ChatState{Screen: domain.ScreenHome}
	}
	return state
}

// SetState sets chat's state
func (h *Handler) SetState(userID int64, state *domain.ChatState) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the chat to the home screen
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.ChatState{Screen: domain.ScreenHome})
}

// Inline keyboard buttons
var (
	btnPrev = tele.Btn{
		Unique: "prev",
		Text:   "⬅️",
	}
	btnFlip = tele.Btn{
		Unique: "flip",
		Text:   "👁 Перевод",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️",
	}
	btnSets = tele.Btn{
		Unique: "sets",
		Text:   "📚 Наборы",
	}
	btnTheme = tele.Btn{
		Unique: "theme",
	}
	btnHome = tele.Btn{
		Unique: "home",
		Text:   "🏠 Главное меню",
	}
)

// Callback data prefix for set selection buttons
const setPrefix = "set_"
