package repository

import (
	"errors"
	"fmt"

	"github.com/restaurant-backoffice/internal/database"
	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// notFound заменяет gorm.ErrRecordNotFound на доменную ошибку
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// translateWrite переводит ошибку вставки или обновления в доменную.
// duplicate может быть nil, если уникальных ключей у сущности нет
func translateWrite(err, duplicate error) error {
	switch database.Classify(err) {
	case database.ClassUniqueViolation:
		if duplicate != nil {
			return duplicate
		}
		return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
	case database.ClassForeignKeyViolation:
		return domain.ErrReferenceNotFound
	case database.ClassCheckViolation:
		return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
	}
	return err
}

// translateDelete переводит ошибку удаления: нарушение внешнего ключа
// означает, что на запись ещё ссылаются через RESTRICT
func translateDelete(err error) error {
	if database.IsForeignKeyViolation(err) {
		return domain.ErrDeleteRestricted
	}
	return err
}

// deleteByID удаляет запись по id и возвращает notFoundErr, если её не было
func deleteByID(db *gorm.DB, model any, id int64, notFoundErr error) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return translateDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
