package strategy

// --- UseCase Inputs ---

// GenerateInput describes the company and where it wants to hire.
// FocusAreas only weighs the comparison and is not part of the cache key.
type GenerateInput struct {
	CompanyName     string
	TargetCountries []string
	Requirements    map[string]any
	FocusAreas      map[string]float64
}
