package domain

// AdminStats aggregated counters for the staff dashboard
type AdminStats struct {
	TodayAppointments     int
	YesterdayAppointments int
	TotalAppointments     int
	PendingAppointments   int
	// Revenue over confirmed and completed appointments
	Revenue float64
}
