package chat

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/middleware"
	"github.com/mgdigi/portfolio/backend/internal/model/chat"
	chatService "github.com/mgdigi/portfolio/backend/internal/service/chat"
	"github.com/mgdigi/portfolio/backend/pkg/utils"
)

// Handler 聊天助手的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/respond", h.handleRespond)
	r.Post("/chat/sessions", h.handleCreateSession)
	r.Get("/chat/sessions/{sessionID}", h.handleGetSession)
	r.Get("/chat/sessions/{sessionID}/messages", h.handleListMessages)
	r.Post("/chat/sessions/{sessionID}/messages", h.handleSendMessage)
}

type sessionView struct {
	Session  chat.Session   `json:"session"`
	Messages []chat.Message `json:"messages"`
	Typing   bool           `json:"typing"`
	Pending  int            `json:"pending"`
}

// handleRespond 无状态地返回关键词匹配的回答
func (h *Handler) handleRespond(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, reply := h.chatSvc.Respond(payload.Message)
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"category": string(category),
		"reply":    reply,
	})
}

// handleCreateSession 创建会话，语言可由请求体覆盖
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := middleware.LanguageFrom(r.Context())
	if payload.Language != "" {
		parsed, ok := i18n.Parse(payload.Language)
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, "unsupported language")
			return
		}
		lang = parsed
	}

	session, messages, err := h.chatSvc.CreateSession(r.Context(), lang)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sessionView{Session: session, Messages: messages})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	pending, err := h.chatSvc.Pending(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, sessionView{
		Session:  session,
		Messages: messages,
		Typing:   pending > 0,
		Pending:  pending,
	})
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// handleSendMessage 追加访客消息，回复稍后通过事件流送达
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	message, err := h.chatSvc.SendMessage(r.Context(), sessionID, payload.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pending, _ := h.chatSvc.Pending(r.Context(), sessionID)
	utils.RespondJSON(w, http.StatusAccepted, map[string]any{
		"message": message,
		"typing":  pending > 0,
		"pending": pending,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
