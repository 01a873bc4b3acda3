package models

// Plan is read-only reference data: a priced, duration-bound membership tier.
type Plan struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Precio        float64 `json:"precio"`
	DuracionMeses int     `json:"duracionMeses"`
}
