package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/technohippy/aiid/internal/config"
	"github.com/technohippy/aiid/internal/domain"
	"github.com/technohippy/aiid/internal/infra/mongodb"
	"github.com/technohippy/aiid/internal/infra/notify"
	"github.com/technohippy/aiid/internal/infra/policyopa"
	"github.com/technohippy/aiid/internal/infra/ratelimit"
	"github.com/technohippy/aiid/internal/platform/logger"
	"github.com/technohippy/aiid/internal/usecase"
)

type Server struct {
	cfg   config.Config
	log   *logger.Logger
	store *mongodb.Store
	r     *gin.Engine

	promote       *usecase.PromoteSubmission
	linker        *usecase.LinkReportsToIncidents
	notifications *usecase.ProcessNotifications

	authorizer  domain.Authorizer
	authInitErr error

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

func NewServer(cfg config.Config, store *mongodb.Store, log *logger.Logger) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, log: log, store: store, r: r}
	s.initDeps()
	s.r.Use(s.requestMeta())
	s.routes()
	return s
}

type ServerDeps struct {
	Promote       *usecase.PromoteSubmission
	Linker        *usecase.LinkReportsToIncidents
	Notifications *usecase.ProcessNotifications
	Authorizer    domain.Authorizer
	RateLimiter   domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, log *logger.Logger, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:           cfg,
		log:           log,
		r:             r,
		promote:       deps.Promote,
		linker:        deps.Linker,
		notifications: deps.Notifications,
		authorizer:    deps.Authorizer,
	}
	s.initAuth()
	s.initRateLimit(deps.RateLimiter)
	s.r.Use(s.requestMeta())
	s.routes()
	return s
}

func (s *Server) initDeps() {
	if s.store != nil {
		submissions := mongodb.NewSubmissionRepository(s.store.Primary)
		incidents := mongodb.NewIncidentRepository(s.store.Primary)
		reports := mongodb.NewReportRepository(s.store.Primary)
		notifications := mongodb.NewNotificationRepository(s.store.Custom)
		subscriptions := mongodb.NewSubscriptionRepository(s.store.Custom)
		incidentsHistory := mongodb.NewIncidentHistoryRepository(s.store.History)
		reportsHistory := mongodb.NewReportHistoryRepository(s.store.History)

		s.linker = &usecase.LinkReportsToIncidents{Incidents: incidents}
		s.promote = &usecase.PromoteSubmission{
			Submissions:      submissions,
			Incidents:        incidents,
			Reports:          reports,
			IncidentsHistory: incidentsHistory,
			ReportsHistory:   reportsHistory,
			Notifications:    notifications,
			Sequences:        &usecase.MaxScanAllocator{Incidents: incidents, Reports: reports},
			Linker:           s.linker,
			DefaultEditorID:  s.cfg.DefaultEditorID,
		}
		s.notifications = &usecase.ProcessNotifications{
			Notifications: notifications,
			Subscriptions: subscriptions,
			Notifier:      notify.NewLogNotifier(s.log),
		}
	}

	s.initAuth()
	s.initRateLimit(nil)
}

func (s *Server) initAuth() {
	switch s.cfg.AuthMode {
	case "", "none":
		return
	case "roles":
		if s.authorizer != nil {
			return
		}
		engine, err := policyopa.NewEngine(context.Background(), s.cfg.PolicyBundlePath)
		if err != nil {
			s.authInitErr = err
			return
		}
		s.authorizer = engine
	default:
		s.authInitErr = errUnsupportedAuthMode
	}
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	if override != nil {
		s.rateLimiter = override
	}
	if s.rateLimiter == nil && s.cfg.RateLimitRequests > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{
				MaxKeys: s.cfg.RateLimitMaxKeys,
			})
		}
	}
	s.rateLimitRequests = s.cfg.RateLimitRequests
	s.rateLimitWindow = s.cfg.RateLimitWindow()
	s.rateLimitFailClosed = s.cfg.RateLimitFailClosed
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		mode := "no-db"
		if s.store != nil {
			mode = "db"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": mode})
	})

	v1 := s.r.Group("/v1")
	{
		v1.POST("/submissions/:submission_id/promote", s.guarded(domain.ActionPromote, s.handlePromoteSubmission))
		v1.POST("/incidents/link", s.guarded(domain.ActionLinkReports, s.handleLinkReports))
		v1.POST("/notifications/process", s.guarded(domain.ActionProcessNotifications, s.handleProcessNotifications))
	}

	s.r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
}

func (s *Server) Handler() http.Handler {
	return s.r
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	return s.r.Run(s.cfg.HTTPAddr)
}
