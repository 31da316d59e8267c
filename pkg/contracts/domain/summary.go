package domain

// AsteroidSummary is the aggregate computed from one dataset.
// It is built once by the summarizer and treated as read-only afterwards.
type AsteroidSummary struct {
	DiameterMedian   float64 `json:"diameter_median"`
	DiameterAverage  float64 `json:"diameter_average"`
	AlbedoAverage    float64 `json:"albedo_average"`
	PerihelionMedian float64 `json:"perihelion_median"`

	ItemsTotal int `json:"items_total"`
	NEOTotal   int `json:"neo_total"`
	PHATotal   int `json:"pha_total"`

	// NEONames and PHANames keep dataset row order.
	NEONames []string `json:"neo_names"`
	PHANames []string `json:"pha_names"`
	// PHAMOIDs is index-aligned with PHANames.
	PHAMOIDs []float64 `json:"pha_moid_in_au"`
}
