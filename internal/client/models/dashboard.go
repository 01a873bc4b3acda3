package models

// DashboardStats is the admin dashboard summary computed server-side.
type DashboardStats struct {
	TotalSocios            int     `json:"totalSocios"`
	SociosActivos          int     `json:"sociosActivos"`
	RenovacionesPendientes int     `json:"renovacionesPendientes"`
	IngresosTotales        float64 `json:"ingresosTotales"`
	PagosTotales           int     `json:"pagosTotales"`
}
