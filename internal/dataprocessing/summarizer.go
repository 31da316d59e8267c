package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "asteroidcli/internal/errors"
	"asteroidcli/pkg/contracts/domain"
)

// Statistic names used in EMPTY_SAMPLE diagnostics
const (
	StatDiameterMedian   = "diameter median"
	StatDiameterAverage  = "diameter average"
	StatAlbedoAverage    = "albedo average"
	StatPerihelionMedian = "perihelion median"
)

// Summarizer turns a loaded dataset into an AsteroidSummary.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer that logs through logger.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// samples collects the numeric columns during the scan
type samples struct {
	diameters   []float64
	albedos     []float64
	perihelions []float64
}

// Summarize classifies every record in one pass and derives the statistics.
// Name lists keep dataset order and PHAMOIDs stays index-aligned with PHANames.
func (s *Summarizer) Summarize(ctx context.Context, records []domain.Asteroid) (*domain.AsteroidSummary, error) {
	s.logger.DebugContext(ctx, "summarizing dataset",
		slog.Int("record_count", len(records)))

	summary := &domain.AsteroidSummary{
		ItemsTotal: len(records),
		NEONames:   []string{},
		PHANames:   []string{},
		PHAMOIDs:   []float64{},
	}
	var smp samples

	for _, rec := range records {
		if rec.NearEarth {
			summary.NEOTotal++
			summary.NEONames = append(summary.NEONames, rec.Name)
		}
		if rec.Hazardous {
			if !rec.MOID.Present() {
				return nil, apperrors.NewDataIntegrityError(
					fmt.Sprintf("potentially hazardous object %q (row %d) has no valid moid value (got %q)",
						rec.Name, rec.Row, rec.MOID.Raw), nil).
					WithContext("row", rec.Row).
					WithContext("name", rec.Name)
			}
			summary.PHATotal++
			summary.PHANames = append(summary.PHANames, rec.Name)
			summary.PHAMOIDs = append(summary.PHAMOIDs, rec.MOID.Value)
		}
		if rec.Diameter.Present() {
			smp.diameters = append(smp.diameters, rec.Diameter.Value)
		}
		if rec.Albedo.Present() {
			smp.albedos = append(smp.albedos, rec.Albedo.Value)
		}
		if rec.Perihelion.Present() {
			smp.perihelions = append(smp.perihelions, rec.Perihelion.Value)
		}
	}

	var err error
	if summary.DiameterMedian, err = Median(StatDiameterMedian, smp.diameters); err != nil {
		return nil, err
	}
	if summary.DiameterAverage, err = Mean(StatDiameterAverage, smp.diameters); err != nil {
		return nil, err
	}
	if summary.AlbedoAverage, err = Mean(StatAlbedoAverage, smp.albedos); err != nil {
		return nil, err
	}
	if summary.PerihelionMedian, err = Median(StatPerihelionMedian, smp.perihelions); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dataset summarized",
		slog.Int("items_total", summary.ItemsTotal),
		slog.Int("neo_total", summary.NEOTotal),
		slog.Int("pha_total", summary.PHATotal),
		slog.Int("diameter_samples", len(smp.diameters)),
		slog.Int("albedo_samples", len(smp.albedos)),
		slog.Int("perihelion_samples", len(smp.perihelions)))

	return summary, nil
}
