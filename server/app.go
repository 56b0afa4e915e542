package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"jobhub/config"
	"jobhub/internal/accounts"
	"jobhub/internal/auth"
	"jobhub/internal/db"
	"jobhub/internal/health"
	"jobhub/internal/logs"
	"jobhub/internal/middleware"
	"jobhub/internal/models"
	"jobhub/internal/posts"
	"jobhub/internal/repo"
	"jobhub/internal/session"
	"jobhub/internal/storage"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Logs */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB */
	d, err := db.Open(a.cfg.Database.Driver, a.cfg.Database.DSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	a.db = d

	if err := a.db.AutoMigrate(
		&models.Account{},
		&models.RegistrationApproval{},
		&models.JobPost{},
		&models.JobFindingPost{},
	); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	/* 3) Sessions */
	var sessStore session.Store
	switch a.cfg.Session.Backend {
	case "redis":
		sessStore = session.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     a.cfg.Session.RedisAddr,
			Password: a.cfg.Session.RedisPassword,
			DB:       a.cfg.Session.RedisDB,
		}))
	default:
		sessStore = session.NewMemStore()
	}
	sessions := session.NewManager(sessStore, a.cfg.Session.TTL)

	/* 4) Object storage */
	var objStore storage.ObjectStorage
	if ep := a.cfg.Storage.Endpoint; ep != "" {
		s, err := storage.NewMinIO(ep, a.cfg.Storage.AccessKey, a.cfg.Storage.SecretKey, a.cfg.Storage.UseSSL)
		if err != nil {
			log.Fatalf("storage init failed: %v", err)
		}
		objStore = s
	} else {
		logs.Logger.Warn("storage.endpoint is empty, using in-memory object store")
		objStore = storage.NewMemStore()
	}

	/* 5) Stores and services */
	accountStore := repo.NewAccountStore(a.db)
	approvalStore := repo.NewApprovalStore(a.db)
	postStore := repo.NewPostStore(a.db)

	accountSvc := accounts.NewService(accountStore, approvalStore, objStore,
		a.cfg.Storage.Bucket, a.cfg.Storage.URLExpire, a.cfg.Auth.BcryptCost)
	postSvc := posts.NewService(postStore)

	var google *auth.Google
	if g := a.cfg.OAuth.Google; g.ClientID != "" {
		google = auth.NewGoogle(accountStore, g.ClientID, g.ClientSecret, g.RedirectURL)
	}

	/* 6) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
	)

	/* 7) Health */
	health.RegisterRoutesWithDB(a.Router, a.db) // /healthz, /readyz

	/* 8) API routes */
	accounts.RegisterRoutes(a.Router, accounts.NewHandler(accountSvc, sessions, google, a.cfg.Frontend.URL))
	posts.RegisterRoutes(a.Router, posts.NewHandler(postSvc), sessions)

	/* (optional) log the known routes at startup */
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Hard timeouts matter in production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
