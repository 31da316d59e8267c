package exporter

import (
	"fmt"
	"io"

	"asteroidcli/pkg/contracts/domain"
)

// WriteSummary prints the three dataset totals in human-readable form
func WriteSummary(w io.Writer, s *domain.AsteroidSummary) error {
	_, err := fmt.Fprintf(w,
		"Summary:\n"+
			"Total number of asteroids in the dataset: %d\n"+
			"Total number of near to Earth asteroids in the dataset: %d\n"+
			"Total number of potentially hazardous asteroids in the dataset: %d\n",
		s.ItemsTotal, s.NEOTotal, s.PHATotal)
	return err
}
