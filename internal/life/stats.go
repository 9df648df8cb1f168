package life

import "time"

// Stats tracks simulation throughput and population trends.
type Stats struct {
	Generations          int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64

	lastStep time.Time
}

// Record folds one completed generation into the stats.
func (s *Stats) Record(population int) {
	now := time.Now()
	if !s.lastStep.IsZero() {
		if d := now.Sub(s.lastStep); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastStep = now

	s.Generations++
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
