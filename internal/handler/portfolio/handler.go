package portfolio

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/model/portfolio"
	"github.com/mgdigi/portfolio/backend/pkg/utils"
)

// Handler 作品集内容的HTTP处理器
type Handler struct {
	content portfolio.Store
}

// New 创建作品集处理器
func New(content portfolio.Store) *Handler {
	return &Handler{content: content}
}

// RegisterRoutes 注册作品集相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleProfile)
	r.Get("/skills", h.handleSkills)
	r.Get("/services", h.handleServices)
	r.Get("/projects", h.handleListProjects)
	r.Get("/projects/categories", h.handleProjectCategories)
	r.Get("/projects/{projectID}", h.handleGetProject)
	r.Get("/i18n", h.handleLanguages)
	r.Get("/i18n/{lang}", h.handleTranslations)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.content.Profile())
}

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.content.Skills())
}

func (h *Handler) handleServices(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.content.Services())
}

// handleListProjects 按分类过滤项目，缺省返回全部
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.content.Projects(r.URL.Query().Get("category")))
}

func (h *Handler) handleProjectCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.content.ProjectCategories())
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "projectID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, ok := h.content.FindProject(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, project)
}

func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"languages": i18n.Supported()})
}

// handleTranslations 返回前端使用的完整文案表
func (h *Handler) handleTranslations(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(chi.URLParam(r, "lang"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "unsupported language")
		return
	}

	table, ok := i18n.Table(lang)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "unsupported language")
		return
	}
	utils.RespondJSON(w, http.StatusOK, table)
}
