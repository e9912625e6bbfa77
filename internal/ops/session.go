// Package ops wires config, persistence and the stock store together for
// the commands.
package ops

import (
	"errors"
	"fmt"

	"github.com/jacksmith/inv/internal/logging"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/jacksmith/inv/internal/storage"
	"go.uber.org/zap"
)

// Session is an inventory loaded from its data file.
type Session struct {
	Config *storage.Config
	File   *storage.File
	Stock  *stock.Store

	// Force lets Commit replace a data file that failed to decode.
	Force bool

	log     *zap.Logger
	loadErr error
}

// Open loads the data file named by cfg into a new store. Missing or
// corrupt files are logged by the storage layer and leave the store empty.
func Open(cfg *storage.Config, log *zap.Logger, observers ...stock.Observer) *Session {
	if cfg == nil {
		cfg = storage.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	file := storage.Open(cfg.DataFile, logging.Named(log, "storage"))
	opts := []stock.Option{stock.WithLogger(logging.Named(log, "stock"))}
	for _, o := range observers {
		opts = append(opts, stock.WithObserver(o))
	}
	st := stock.New(opts...)

	snap, err := file.Load()
	if err != nil {
		log.Debug("continuing with empty inventory", zap.Error(err))
	}
	st.Replace(snap)

	return &Session{Config: cfg, File: file, Stock: st, log: log, loadErr: err}
}

// Commit writes the store back to the data file. A file that existed but
// could not be decoded is left alone unless Force is set, so its contents
// can still be repaired by hand.
func (s *Session) Commit() error {
	var corrupt *storage.CorruptError
	if errors.As(s.loadErr, &corrupt) && !s.Force {
		s.log.Warn("refusing to overwrite corrupt data file", zap.String("path", corrupt.Path))
		return fmt.Errorf("not saving: %w (use --force to overwrite it)", corrupt)
	}
	return s.File.Save(s.Stock.Snapshot())
}
