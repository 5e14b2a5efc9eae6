package country

// Starting resources for a newly founded country
const (
	DefaultPopulation  = 1000
	DefaultEconomy     = 10000
	DefaultEnvironment = 100
)

// Environment is a bounded score
const (
	MinEnvironment = 0
	MaxEnvironment = 100
)

// Resources is the current stock of a country.
// Population and economy are unbounded above; environment is kept in [0,100].
type Resources struct {
	Population  int `json:"population"`
	Economy     int `json:"economy"`
	Environment int `json:"environment"`
}

// DefaultResources returns the resources every new country starts with
func DefaultResources() Resources {
	return Resources{
		Population:  DefaultPopulation,
		Economy:     DefaultEconomy,
		Environment: DefaultEnvironment,
	}
}

// clampEnvironment pulls environment back into its bounds
func (r Resources) clampEnvironment() Resources {
	if r.Environment < MinEnvironment {
		r.Environment = MinEnvironment
	}
	if r.Environment > MaxEnvironment {
		r.Environment = MaxEnvironment
	}
	return r
}
