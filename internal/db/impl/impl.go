package impl

import (
	"database/sql"
	"errors"

	"codeberg.org/gruf/go-mutexes"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
	// locks serialises writes that must read first, keyed by resource, so that
	// concurrent remote user inserts stay idempotent.
	locks *mutexes.MutexMap
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
		locks:  &mutexes.MutexMap{},
	}
}

// HandleError takes a database error and returns a higher level error that hides the
// implementation details and can be more easily handled by the calling functions
// without doing type assertions, checking error codes and comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	switch err {
	case nil:
		return nil
	case sql.ErrNoRows:
		return db.ErrNotFound
	case db.ErrNotFound, db.ErrConflict:
		return err
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return db.ErrConflict
	}

	log.Error().Err(err).Msg("database error")
	return err
}

func (d *dbImpl) WithTx(f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}
