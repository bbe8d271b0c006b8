package domain

// RevenueRow строка финансового отчета: выручка одного сотрудника за день.
// Учитываются бронирования со статусами booked и confirmed
// (отменённые и no-show исключены, но остаются в БД для истории).
type RevenueRow struct {
	DateKey      string
	EmployeeID   string
	EmployeeName string
	Bookings     int
	Total        int // RSD
}
