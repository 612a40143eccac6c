package costing

// DefaultLaborRate is the conventional fallback labor rate (currency per
// hour) that callers may opt into explicitly. It is never applied
// implicitly: a computation that needs labor cost with no configured rate
// fails with ErrMissingLaborRate.
const DefaultLaborRate = 50.0

// Config carries per-computation parameters. The zero value means "no labor
// rate configured".

type Config struct {
	// LaborRate is currency per labor hour. Nil means not configured.
	LaborRate *float64
}

// NewConfig returns a Config with the given labor rate set.
func NewConfig(laborRate float64) Config {
	return Config{LaborRate: &laborRate}
}

func (c Config) rate() (float64, error) {
	if c.LaborRate == nil {
		return 0, ErrMissingLaborRate
	}
	if *c.LaborRate < 0 {
		return 0, ErrInvalidLaborRate
	}
	return *c.LaborRate, nil
}
