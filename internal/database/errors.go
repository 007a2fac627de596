package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass - категория ошибки драйвера, от которой зависит реакция репозитория
type ErrorClass int

const (
	ClassUnknown ErrorClass = iota
	ClassUniqueViolation
	ClassForeignKeyViolation
	ClassCheckViolation
	ClassTransient
)

// Коды SQLSTATE postgres
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgNumericOutOfRange    = "22003"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// Classify определяет категорию ошибки postgres или sqlite
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ClassUniqueViolation
		case pgForeignKeyViolation:
			return ClassForeignKeyViolation
		case pgCheckViolation, pgNotNullViolation, pgNumericOutOfRange:
			return ClassCheckViolation
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return ClassTransient
		}
		return ClassUnknown
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ClassUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return ClassForeignKeyViolation
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return ClassCheckViolation
		}
		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return ClassTransient
		}
	}

	return ClassUnknown
}

func IsUniqueViolation(err error) bool {
	return Classify(err) == ClassUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Classify(err) == ClassForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	return Classify(err) == ClassCheckViolation
}

// IsTransient сообщает, что транзакцию можно повторить
func IsTransient(err error) bool {
	return Classify(err) == ClassTransient
}
