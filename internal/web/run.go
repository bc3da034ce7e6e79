package web

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bluegreyowl/gradebook/internal/config"
	"github.com/bluegreyowl/gradebook/internal/grades"
	lf "github.com/bluegreyowl/gradebook/internal/logfield"
	"github.com/bluegreyowl/gradebook/internal/storage"
	"github.com/bluegreyowl/gradebook/internal/store"
)

func Run(logger *zap.Logger) error {
	conf, err := config.ParseConfig()
	if err != nil {
		return err
	}

	scale := grades.Default()
	if conf.Grades.ScalePath != "" {
		if scale, err = grades.Load(conf.Grades.ScalePath); err != nil {
			return err
		}
	}

	backend, err := storage.NewBackend(logger, conf.Storage.Backend, conf.Storage.Path, conf.Storage.PersistGrade)
	if err != nil {
		return err
	}

	st, err := store.Open(logger, scale, backend)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newServer(conf, logger.With(lf.Module("web")), st)

	g := errgroup.Group{}
	g.Go(func() error {
		return s.run(ctx)
	})

	return errors.Wrap(g.Wait(), "Server failed")
}
