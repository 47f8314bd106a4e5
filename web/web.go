// Package web provides the HTTP server of the echo-journal API: routing,
// middleware, and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"echo-journal/config"
	"echo-journal/logger"
	"echo-journal/web/controller"
	"echo-journal/web/job"
	"echo-journal/web/middleware"
	"echo-journal/web/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	article   *controller.ArticleController
	publisher *controller.PublisherController
	user      *controller.UserController
	stats     *controller.StatsController
	auth      *controller.AuthController
	payment   *controller.PaymentController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers, and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	// Credentialed CORS for the frontend dev servers
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.RequestCounter())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Journal published")
	})

	g := engine.Group("/")
	s.article = controller.NewArticleController(g)
	s.publisher = controller.NewPublisherController(g)
	s.user = controller.NewUserController(g)
	s.stats = controller.NewStatsController(g)
	s.auth = controller.NewAuthController(g)
	s.payment = controller.NewPaymentController(g, payment.New(config.GetStripeSecretKey()))

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewPremiumExpiryJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.startTask()

	s.httpServer = &http.Server{Handler: engine}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve err:", err)
		}
	}()

	logger.Infof("%v %v listening on %v", config.GetName(), config.GetVersion(), listenAddr)
	return nil
}

// Stop shuts down the HTTP server, the scheduler, and the listener.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	return err
}
