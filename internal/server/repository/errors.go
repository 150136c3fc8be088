// Package repository реализует хранилища пользователей и карточек поверх PostgreSQL.
//
// Репозитории не содержат бизнес-логики: только SQL и перевод ошибок драйвера
// в виды ошибок приложения (serr).
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

// Коды ошибок PostgreSQL, которые переводятся в ошибки приложения.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
	pgInvalidText         = "22P02"
)

// mapError переводит ошибку БД в ошибку приложения.
//
// notFound — сообщение для sql.ErrNoRows, conflict — для нарушения уникальности.
// Всё непредвиденное оборачивается с контекстом op и станет 500.
func mapError(op string, err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return serr.NotFound(notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return serr.Conflict(conflict)
		case pgCheckViolation, pgNotNullViolation, pgStringTooLong, pgInvalidText:
			// нарушение схемы при записи
			return serr.BadRequest(serr.MsgBadRequest)
		case pgForeignKeyViolation:
			return serr.NotFound(serr.MsgUserNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
