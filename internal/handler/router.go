package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mgdigi/portfolio/backend/internal/config"
	"github.com/mgdigi/portfolio/backend/internal/handler/chat"
	"github.com/mgdigi/portfolio/backend/internal/handler/contact"
	"github.com/mgdigi/portfolio/backend/internal/handler/portfolio"
	"github.com/mgdigi/portfolio/backend/internal/handler/stream"
	"github.com/mgdigi/portfolio/backend/internal/i18n"
	middlewarePkg "github.com/mgdigi/portfolio/backend/internal/middleware"
	portfolioModel "github.com/mgdigi/portfolio/backend/internal/model/portfolio"
	chatService "github.com/mgdigi/portfolio/backend/internal/service/chat"
	contactService "github.com/mgdigi/portfolio/backend/internal/service/contact"
	"github.com/mgdigi/portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(serverCfg config.ServerConfig, content portfolioModel.Store, chatSvc *chatService.Service, contactSvc *contactService.Service) http.Handler {
	// config.Load rejects unsupported values; only an unset one lands here.
	defaultLang, ok := i18n.Parse(serverCfg.DefaultLanguage)
	if !ok {
		defaultLang = i18n.French
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(serverCfg.AllowedOrigins))
	r.Use(middlewarePkg.Language(defaultLang))

	portfolioHandler := portfolio.New(content)
	chatHandler := chat.New(chatSvc)
	wsHandler := chat.NewWebSocketHandler(chatSvc, serverCfg.AllowedOrigins)
	streamHandler := stream.New(chatSvc)
	contactHandler := contact.New(contactSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		portfolioHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterWebSocketRoutes(api)
		streamHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	})

	return r
}
