package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-dating-service/internal/http/handlers"
	"github.com/pribylovaa/go-dating-service/internal/http/middleware"
	"github.com/pribylovaa/go-dating-service/internal/models"
	"github.com/pribylovaa/go-dating-service/internal/service"
)

// Options - параметры сборки HTTP-роутера.
type Options struct {
	Logger        *slog.Logger
	Timeout       time.Duration // общий дедлайн /api
	UploadTimeout time.Duration // дедлайн загрузки фотографии
	Parser        middleware.TokenParser
	Metrics       *middleware.HTTPMetrics // nil - без метрик
	MaxPhotoBytes int64
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами /api.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)

	h := handlers.New(svc, opts.MaxPhotoBytes)

	root.Route("/api", func(api chi.Router) {
		api.Use(middleware.Authenticate(opts.Parser))
		registerRoutes(api, h, opts)
	})

	return root
}

// registerRoutes - единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(api chi.Router, h *handlers.Handlers, opts Options) {
	// Загрузка живёт со своим сроком: multipart и PutObject дольше обычного запроса.
	api.With(middleware.Timeout(opts.UploadTimeout)).Post("/users/{userId}/photos", h.AddPhotoForUser)

	r := api.With(middleware.Timeout(opts.Timeout))

	// admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(models.RoleAdmin))
		r.Get("/admin/usersWithRoles", h.UsersWithRoles)
		r.Post("/admin/editRoles/{userName}", h.EditRoles)
	})

	// moderation
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(models.RoleAdmin, models.RoleModerator))
		r.Get("/admin/photosForModeration", h.PhotosForModeration)
		r.Post("/admin/rejectPhoto/{photoId}", h.RejectPhoto)
		r.Post("/admin/approvePhoto/{photoId}", h.ApprovePhoto)
	})

	// photos
	r.Get("/users/{userId}/photos/{id}", h.GetPhoto)
	r.Post("/users/{userId}/photos/{id}/setMain", h.SetMainPhoto)
	r.Delete("/users/{userId}/photos/{id}", h.DeletePhoto)
}
