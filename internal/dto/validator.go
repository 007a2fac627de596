package dto

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// NewValidator создаёт валидатор с правилами для перечислений и денежных сумм
func NewValidator() *validator.Validate {
	v := validator.New()

	// Числовые правила gt/gte сравнивают decimal как число
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	enums := map[string]func(string) bool{
		"employee_role":      func(s string) bool { return domain.EmployeeRole(s).IsValid() },
		"table_location":     func(s string) bool { return domain.TableLocation(s).IsValid() },
		"reservation_status": func(s string) bool { return domain.ReservationStatus(s).IsValid() },
		"order_type":         func(s string) bool { return domain.OrderType(s).IsValid() },
		"order_status":       func(s string) bool { return domain.OrderStatus(s).IsValid() },
	}
	for tag, isValid := range enums {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return isValid(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}

	return v
}
