package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyScale - число знаков после запятой у денежных колонок
const MoneyScale = 2

// MaxItemQuantity - наибольшее количество в одной позиции заказа
const MaxItemQuantity = 1000

// DefaultTaxRate - ставка налога с продаж
var DefaultTaxRate = decimal.RequireFromString("0.0825")

// OrderTotals - производные денежные поля заказа
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Tip      decimal.Decimal `json:"tip"`
	Total    decimal.Decimal `json:"total"`
}

// Equal сравнивает суммы по значению, а не по представлению
func (t OrderTotals) Equal(other OrderTotals) bool {
	return t.Subtotal.Equal(other.Subtotal) &&
		t.Tax.Equal(other.Tax) &&
		t.Tip.Equal(other.Tip) &&
		t.Total.Equal(other.Total)
}

// CalculateTotals выполняет полный пересчёт по текущему набору позиций.
// Subtotal - точная сумма quantity*unit_price, налог округляется один раз
// (half-up, два знака), total = subtotal + tax + tip.
// Результат может не поместиться в numeric(10,2), проверка на совести вызывающего.
func CalculateTotals(items []OrderItem, tip, taxRate decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
	}

	tax := RoundMoney(subtotal.Mul(taxRate))

	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal.Add(tax).Add(tip),
	}
}

// RoundMoney округляет до центов, половина - вверх (в сторону +inf) для любого знака
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Add(halfCent).RoundFloor(MoneyScale)
}

var halfCent = decimal.New(5, -(MoneyScale + 1))

// FitsMoneyColumns сообщает, что все суммы помещаются в колонки заказа
func (t OrderTotals) FitsMoneyColumns() bool {
	return IsMoneyAmount(t.Subtotal) && IsMoneyAmount(t.Tax) &&
		IsMoneyAmount(t.Tip) && IsMoneyAmount(t.Total)
}

// IsMoneyAmount проверяет, что значение помещается в колонку numeric(10,2) без округления
func IsMoneyAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale)) && d.LessThan(maxMoney)
}

var maxMoney = decimal.New(1, 8)
