package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/karlseguin/ccache/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/internal/config"
	"github.com/bluegreyowl/gradebook/internal/store"
)

type server struct {
	config *config.Config
	logger *zap.Logger
	store  *store.Store

	// Statistics are cached per store revision, so a burst of chart
	// refreshes does not rescan the record set.
	statsCache *ccache.Cache
}

func newServer(config *config.Config, logger *zap.Logger, store *store.Store) *server {
	return &server{
		config:     config,
		logger:     logger,
		store:      store,
		statsCache: ccache.New(ccache.Configure().MaxSize(64)),
	}
}

func (s *server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	r.GET("/api/students", s.listStudents)
	r.POST("/api/students", s.addStudent)
	r.GET("/api/students/:roll", s.getStudent)
	r.PUT("/api/students/:roll", s.updateStudent)
	r.DELETE("/api/students/:roll", s.deleteStudent)
	r.GET("/api/statistics", s.statistics)

	return r
}

func (s *server) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: s.router(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("Server started", zap.String("address", s.config.Server.ListenAddress))

	select {
	case err := <-errc:
		return errors.Wrap(err, "Server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "Failed to shutdown server")
}
