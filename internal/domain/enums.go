package domain

// EmployeeRole - должность сотрудника
type EmployeeRole string

const (
	RoleHost      EmployeeRole = "Host"
	RoleServer    EmployeeRole = "Server"
	RoleBartender EmployeeRole = "Bartender"
	RoleCook      EmployeeRole = "Cook"
	RoleManager   EmployeeRole = "Manager"
)

func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleHost, RoleServer, RoleBartender, RoleCook, RoleManager:
		return true
	}
	return false
}

// CanServe сообщает, обслуживает ли роль заказы напрямую
func (r EmployeeRole) CanServe() bool {
	return r == RoleServer || r == RoleBartender || r == RoleManager
}

// TableLocation - зона зала
type TableLocation string

const (
	LocationMainDining  TableLocation = "Main Dining"
	LocationPatio       TableLocation = "Patio"
	LocationBarArea     TableLocation = "Bar Area"
	LocationPrivateRoom TableLocation = "Private Room"
)

func (l TableLocation) IsValid() bool {
	switch l {
	case LocationMainDining, LocationPatio, LocationBarArea, LocationPrivateRoom:
		return true
	}
	return false
}

// ReservationStatus - статус брони
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationSeated    ReservationStatus = "Seated"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationNoShow    ReservationStatus = "No-Show"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationConfirmed, ReservationSeated, ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}

// HoldsTable сообщает, занимает ли бронь столик
func (s ReservationStatus) HoldsTable() bool {
	return s == ReservationConfirmed || s == ReservationSeated
}

// OrderType - тип заказа
type OrderType string

const (
	OrderDineIn  OrderType = "Dine-In"
	OrderTakeout OrderType = "Takeout"
	OrderBar     OrderType = "Bar"
)

func (t OrderType) IsValid() bool {
	switch t {
	case OrderDineIn, OrderTakeout, OrderBar:
		return true
	}
	return false
}

// OrderStatus - статус заказа
type OrderStatus string

const (
	OrderOpen       OrderStatus = "Open"
	OrderInProgress OrderStatus = "In Progress"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderOpen, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal сообщает, что заказ закрыт и его позиции менять нельзя
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo проверяет допустимость смены статуса
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || s == next {
		return false
	}
	switch next {
	case OrderInProgress:
		return s == OrderOpen
	case OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
