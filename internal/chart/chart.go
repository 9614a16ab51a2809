// Package chart builds loading charts: the plates needed for every weight in a
// range, rendered as a text table or an Excel workbook.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/eugenenazirov/plate-calculator/internal/narrator"
	"github.com/eugenenazirov/plate-calculator/internal/plates"
)

const (
	// DefaultStep is the increment used when Range.Step is zero.
	DefaultStep = 5.0

	maxRows = 10_000
)

// ErrInvalidRange is returned for a non-positive step, a reversed range or a
// range that would produce too many rows.
var ErrInvalidRange = errors.New("invalid chart range")

// Loader is the part of a plate selector a chart needs.
type Loader interface {
	Select(required float64) (plates.Result, error)
	BarWeight() float64
	MaxWeight() float64
}

// Range selects the weights charted: From, From+Step, ... up to To inclusive.
// Nil fields take defaults: the bar weight, the maximum weight and DefaultStep.
// An explicit zero is used as given.
type Range struct {
	From *float64
	To   *float64
	Step *float64
}

// bounds is a Range with defaults resolved.
type bounds struct {
	from, to, step float64
}

// Row is one line of a loading chart.
type Row struct {
	Required float64
	Result   plates.Result
	Message  string
}

// Build selects plates for every weight in r.
func Build(loader Loader, r Range) ([]Row, error) {
	b := r.resolve(loader)
	if b.step <= 0 || math.IsNaN(b.step) {
		return nil, fmt.Errorf("%w: step must be greater than zero, got %.1f", ErrInvalidRange, b.step)
	}
	if !isFinite(b.from) || !isFinite(b.to) {
		return nil, fmt.Errorf("%w: from and to must be finite, got %v and %v", ErrInvalidRange, b.from, b.to)
	}
	if b.from > b.to {
		return nil, fmt.Errorf("%w: from %.1f is greater than to %.1f", ErrInvalidRange, b.from, b.to)
	}

	count := math.Floor((b.to-b.from)/b.step) + 1
	if count > maxRows {
		return nil, fmt.Errorf("%w: %.0f rows exceeds the limit of %d", ErrInvalidRange, count, maxRows)
	}

	rows := make([]Row, 0, int(count))
	for i := 0; i < int(count); i++ {
		required := b.from + float64(i)*b.step
		result, err := loader.Select(required)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Required: required,
			Result:   result,
			Message:  narrator.Message(required, result),
		})
	}
	return rows, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r Range) resolve(loader Loader) bounds {
	b := bounds{from: loader.BarWeight(), to: loader.MaxWeight(), step: DefaultStep}
	if r.From != nil {
		b.from = *r.From
	}
	if r.To != nil {
		b.to = *r.To
	}
	if r.Step != nil {
		b.step = *r.Step
	}
	return b
}

// perSideLabel lists one side's plates, heaviest first, or "-" for an empty bar.
func perSideLabel(result plates.Result) string {
	if len(result.Plates) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(result.Plates))
	for _, p := range result.Plates {
		labels = append(labels, narrator.FormatWeight(p))
	}
	return strings.Join(labels, ", ")
}
