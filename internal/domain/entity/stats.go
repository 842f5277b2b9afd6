package entity

// GlobalImpactStats aggregates the whole store.
type GlobalImpactStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	TotalBottles         int64 `json:"totalBottles"`
	TotalCO2Saved        int64 `json:"totalCO2Saved"`
	CountriesActive      int64 `json:"countriesActive"`
	DroughtRegionsHelped int64 `json:"droughtRegionsHelped"`
}
