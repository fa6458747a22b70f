package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "ppob-api/docs"
	"ppob-api/internal/config"
	authhandlers "ppob-api/internal/handlers/auth"
	healthhandlers "ppob-api/internal/handlers/health"
	informationhandlers "ppob-api/internal/handlers/information"
	profilehandlers "ppob-api/internal/handlers/profile"
	transactionhandlers "ppob-api/internal/handlers/transaction"
	"ppob-api/internal/service"
	"ppob-api/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfileImage(w http.ResponseWriter, r *http.Request)
}

type InformationHandler interface {
	GetServices(w http.ResponseWriter, r *http.Request)
	GetBanners(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ProfileHandler     ProfileHandler
	InformationHandler InformationHandler
	TransactionHandler TransactionHandler
	HealthHandler      HealthHandler

	uploadDir string
}

func New(s *service.Services, db healthhandlers.Pinger, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ProfileHandler: profilehandlers.New(s.ProfileService, profilehandlers.UploadConfig{
			Dir:     cfg.UploadDir,
			MaxSize: cfg.MaxUploadSize,
			BaseURL: cfg.BaseURL,
		}),
		InformationHandler: informationhandlers.New(s.CatalogService),
		TransactionHandler: transactionhandlers.New(s.LedgerService),
		HealthHandler:      healthhandlers.New(db),

		uploadDir: cfg.UploadDir,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.HealthHandler.Check)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	r.Post("/registration", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/profile", h.ProfileHandler.GetProfile)
		r.Put("/profile/update", h.ProfileHandler.UpdateProfile)
		r.Put("/profile/image", h.ProfileHandler.UpdateProfileImage)

		r.Get("/banner", h.InformationHandler.GetBanners)
		r.Get("/services", h.InformationHandler.GetServices)

		r.Get("/balance", h.TransactionHandler.GetBalance)
		r.Post("/topup", h.TransactionHandler.TopUp)
		r.Post("/transaction", h.TransactionHandler.Pay)
		r.Get("/transaction/history", h.TransactionHandler.GetHistory)
	})

	return r
}
