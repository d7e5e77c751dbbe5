package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicate           = errors.New("duplicate")
	ErrInvalidID           = errors.New("invalid id")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrTxAborted           = errors.New("transaction aborted")
	ErrVersionConflict     = errors.New("version conflict")
)

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	pgErr := &pgconn.PgError{}
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return errors.Join(ErrDuplicate, err)
		case "23503":
			return errors.Join(ErrForeignKeyViolation, err)
		case "22P02":
			return errors.Join(ErrInvalidID, err)
		case "25P02":
			return errors.Join(ErrTxAborted, err)
		}
	}

	return err
}
