// Package tracker runs sensor packages through the workout pipeline and
// writes one summary per package.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/and161185/fitness-tracker/internal/config"
	"github.com/and161185/fitness-tracker/internal/reader"
	"github.com/and161185/fitness-tracker/internal/training"
	"github.com/and161185/fitness-tracker/model"
	"github.com/google/uuid"
)

var ErrNonFiniteMetrics = errors.New("computed metrics are not finite")

// Tracker processes packages and writes reports to out.
type Tracker struct {
	config *config.TrackerConfig
	out    io.Writer
}

// NewTracker creates a tracker writing reports to out.
func NewTracker(cfg *config.TrackerConfig, out io.Writer) *Tracker {
	return &Tracker{
		config: cfg,
		out:    out,
	}
}

// Run processes pkgs in order. A failed package is logged and skipped, or
// stops the run in strict mode. All failures are returned joined.
func (trk *Tracker) Run(ctx context.Context, pkgs []model.Package) error {
	logger := trk.config.Logger.With("run_id", uuid.NewString())
	logger.Infof("processing %d packages, output=%s strict=%t", len(pkgs), trk.config.Output, trk.config.Strict)

	var errs []error
	processed := 0
	for i, p := range pkgs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		info, err := Report(p)
		if err != nil {
			logger.Errorw("failed to process package", "index", i, "type", p.Code, "data", p.Data, "error", err)
			errs = append(errs, fmt.Errorf("package %d: %w", i, err))
			if trk.config.Strict {
				break
			}
			continue
		}

		logger.Debugw("package processed",
			"index", i,
			"type", info.TrainingType,
			"distance", info.Distance,
			"speed", info.Speed,
			"calories", info.Calories,
		)

		if err := trk.write(info); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		processed++
	}

	logger.Infof("done: %d processed, %d failed", processed, len(errs))
	return errors.Join(errs...)
}

// Report dispatches a package to its workout and builds the summary.
func Report(p model.Package) (model.InfoMessage, error) {
	w, err := reader.ReadPackage(p.Code, p.Data)
	if err != nil {
		return model.InfoMessage{}, err
	}
	info := training.ShowTrainingInfo(w)
	for _, v := range []float64{info.Duration, info.Distance, info.Speed, info.Calories} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.InfoMessage{}, fmt.Errorf("%w: %s %v", ErrNonFiniteMetrics, p.Code, p.Data)
		}
	}
	return info, nil
}

func (trk *Tracker) write(info model.InfoMessage) error {
	if trk.config.Output == config.OutputJSON {
		return json.NewEncoder(trk.out).Encode(info)
	}
	_, err := fmt.Fprintln(trk.out, info.Message())
	return err
}
