package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer представляет гостя ресторана
type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string    `json:"last_name" gorm:"type:varchar(50);not null"`
	Phone     *string   `json:"phone" gorm:"type:varchar(20)"`
	Email     string    `json:"email" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Customer) TableName() string {
	return "customers"
}

// Employee представляет сотрудника ресторана
type Employee struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string          `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName   string          `json:"last_name" gorm:"type:varchar(50);not null"`
	Role       EmployeeRole    `json:"role" gorm:"type:varchar(20);not null"`
	Phone      *string         `json:"phone" gorm:"type:varchar(20)"`
	Email      *string         `json:"email" gorm:"type:varchar(100)"`
	HireDate   time.Time       `json:"hire_date" gorm:"type:date;not null"`
	HourlyWage decimal.Decimal `json:"hourly_wage" gorm:"type:numeric(10,2);not null"`
	ManagerID  *int64          `json:"manager_id" gorm:"index"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Manager *Employee `json:"-" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// FullName возвращает имя и фамилию через пробел
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Table - столик в зале. Не удаляется, а деактивируется
type Table struct {
	ID          int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	TableNumber string        `json:"table_number" gorm:"type:varchar(10);not null;uniqueIndex"`
	Capacity    int           `json:"capacity" gorm:"not null"`
	Location    TableLocation `json:"location" gorm:"type:varchar(20);not null"`
	IsActive    bool          `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Table) TableName() string {
	return "restaurant_tables"
}

// Category - раздел меню
type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// MenuItem - позиция меню
type MenuItem struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description *string         `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	IsAvailable bool            `json:"is_available" gorm:"not null"`
	CategoryID  int64           `json:"category_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName задаёт имя таблицы для GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// Reservation - бронь столика гостем
type Reservation struct {
	ID              int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID      int64             `json:"customer_id" gorm:"not null;index"`
	TableID         int64             `json:"table_id" gorm:"not null;index"`
	ReservationDate time.Time         `json:"reservation_date" gorm:"type:date;not null"`
	ReservationTime string            `json:"reservation_time" gorm:"type:varchar(5);not null"`
	PartySize       int               `json:"party_size" gorm:"not null"`
	Status          ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:Confirmed"`
	SpecialRequests *string           `json:"special_requests" gorm:"type:text"`
	CreatedAt       time.Time         `json:"created_at" gorm:"autoCreateTime"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Table    *Table    `json:"-" gorm:"foreignKey:TableID;constraint:OnDelete:RESTRICT"`
}

// TableName задаёт имя таблицы для GORM
func (Reservation) TableName() string {
	return "reservations"
}

// Shift - смена сотрудника
type Shift struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;index"`
	ShiftDate  time.Time `json:"shift_date" gorm:"type:date;not null"`
	StartTime  string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime    string    `json:"end_time" gorm:"type:varchar(5);not null"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Shift) TableName() string {
	return "shifts"
}

// Order - заказ. Subtotal, Tax и Total всегда пересчитываются хранилищем
// по текущим позициям, напрямую задаётся только Tip
type Order struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID *int64          `json:"customer_id" gorm:"index"`
	EmployeeID int64           `json:"employee_id" gorm:"not null;index"`
	TableID    *int64          `json:"table_id" gorm:"index"`
	OrderType  OrderType       `json:"order_type" gorm:"type:varchar(10);not null"`
	Status     OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:Open"`
	OrderDate  time.Time       `json:"order_date" gorm:"type:date;not null"`
	OrderTime  string          `json:"order_time" gorm:"type:varchar(5);not null"`
	Subtotal   decimal.Decimal `json:"subtotal" gorm:"type:numeric(10,2);not null;default:0"`
	Tax        decimal.Decimal `json:"tax" gorm:"type:numeric(10,2);not null;default:0"`
	Tip        decimal.Decimal `json:"tip" gorm:"type:numeric(10,2);not null;default:0"`
	Total      decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Order) TableName() string {
	return "orders"
}

// Totals возвращает денежные поля заказа
func (o *Order) Totals() OrderTotals {
	return OrderTotals{
		Subtotal: o.Subtotal,
		Tax:      o.Tax,
		Tip:      o.Tip,
		Total:    o.Total,
	}
}

// ApplyTotals записывает пересчитанные значения в заказ
func (o *Order) ApplyTotals(t OrderTotals) {
	o.Subtotal = t.Subtotal
	o.Tax = t.Tax
	o.Tip = t.Tip
	o.Total = t.Total
}

// OrderItem - позиция заказа. UnitPrice фиксирует цену на момент добавления
type OrderItem struct {
	ID                  int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID             int64           `json:"order_id" gorm:"not null;index"`
	ItemID              int64           `json:"item_id" gorm:"not null;index"`
	Quantity            int             `json:"quantity" gorm:"not null"`
	UnitPrice           decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2);not null"`
	SpecialInstructions *string         `json:"special_instructions" gorm:"type:text"`
	CreatedAt           time.Time       `json:"created_at" gorm:"autoCreateTime"`

	MenuItem *MenuItem `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
}

// TableName задаёт имя таблицы для GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal - стоимость позиции без налога
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
