package contact

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/analysis/contactform"
	"github.com/mgdigi/portfolio/backend/internal/middleware"
	contactService "github.com/mgdigi/portfolio/backend/internal/service/contact"
	"github.com/mgdigi/portfolio/backend/pkg/utils"
)

// Handler 联系表单的HTTP处理器
type Handler struct {
	contactSvc *contactService.Service
}

// New 创建联系表单处理器
func New(contactSvc *contactService.Service) *Handler {
	return &Handler{contactSvc: contactSvc}
}

// RegisterRoutes 注册联系表单路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
	r.Get("/contact/{submissionID}", h.handleGet)
}

// handleSubmit 校验表单，失败时返回逐字段的本地化错误
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var form contactform.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := middleware.LanguageFrom(r.Context())
	submission, errs, err := h.contactSvc.Submit(r.Context(), form, lang)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !errs.Valid() {
		utils.RespondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, submission)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	submission, err := h.contactSvc.Get(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		if errors.Is(err, contactService.ErrSubmissionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, submission)
}
