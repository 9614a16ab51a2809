package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/plate-calculator/internal/chart"
	"github.com/eugenenazirov/plate-calculator/internal/config"
	"github.com/eugenenazirov/plate-calculator/internal/narrator"
	"github.com/eugenenazirov/plate-calculator/internal/plates"
)

// App encapsulates the configured selector, narrator and logger.
type App struct {
	selector *plates.Selector
	narrator *narrator.Narrator
	logger   *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	sel, err := plates.New(cfg.Plates, cfg.BarWeight)
	if err != nil {
		return nil, fmt.Errorf("failed to build plate selector: %w", err)
	}

	narr, err := narrator.New(sel)
	if err != nil {
		return nil, fmt.Errorf("failed to build narrator: %w", err)
	}

	logger.Debug("plate selector ready",
		zap.Float64s("inventory", sel.Inventory()),
		zap.Float64("bar_weight", sel.BarWeight()),
		zap.Float64("max_weight", sel.MaxWeight()),
	)

	return &App{
		selector: sel,
		narrator: narr,
		logger:   logger,
	}, nil
}

// Select returns the per-side plates for required.
func (a *App) Select(required float64) (plates.Result, error) {
	result, err := a.selector.Select(required)
	if err != nil {
		a.logger.Warn("plate selection failed", zap.Float64("required", required), zap.Error(err))
		return plates.Result{}, err
	}

	a.logger.Debug("plates selected",
		zap.Float64("required", required),
		zap.Float64("achieved", result.WeightAchieved),
		zap.Int("plates_per_side", len(result.Plates)),
	)
	return result, nil
}

// Describe returns the narration for required.
func (a *App) Describe(required float64) (string, error) {
	msg, err := a.narrator.Describe(required)
	if err != nil {
		a.logger.Warn("describe failed", zap.Float64("required", required), zap.Error(err))
		return "", err
	}
	return msg, nil
}

// Chart builds a loading chart over r.
func (a *App) Chart(r chart.Range) ([]chart.Row, error) {
	rows, err := chart.Build(a.selector, r)
	if err != nil {
		a.logger.Warn("chart build failed", zap.Error(err))
		return nil, err
	}

	a.logger.Debug("chart built", zap.Int("rows", len(rows)))
	return rows, nil
}

// ExportChart writes rows to an Excel workbook at path.
func (a *App) ExportChart(path string, rows []chart.Row) error {
	if err := chart.WriteXLSX(path, rows); err != nil {
		return fmt.Errorf("export chart: %w", err)
	}

	a.logger.Info("chart exported", zap.String("path", path), zap.Int("rows", len(rows)))
	return nil
}

// Selector returns the underlying plate selector.
func (a *App) Selector() *plates.Selector {
	return a.selector
}
