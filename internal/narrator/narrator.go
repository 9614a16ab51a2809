// Package narrator turns a plate selection into a sentence a lifter can read
// at the rack.
package narrator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/eugenenazirov/plate-calculator/internal/plates"
)

const (
	plateSeparator = " and "
	emptyBar       = "an empty bar"
)

// ErrNilSelector is returned when a Narrator is constructed without a selector.
var ErrNilSelector = errors.New("plate selector must not be nil")

// PlateSelector is the behaviour a Narrator needs from the plate selection step.
type PlateSelector interface {
	Select(required float64) (plates.Result, error)
}

// Narrator describes plate selections in plain English.
type Narrator struct {
	selector PlateSelector
}

// New returns a Narrator backed by sel.
func New(sel PlateSelector) (*Narrator, error) {
	if sel == nil {
		return nil, ErrNilSelector
	}
	if s, ok := sel.(*plates.Selector); ok && s == nil {
		return nil, ErrNilSelector
	}
	return &Narrator{selector: sel}, nil
}

// Describe selects plates for required and explains the result. Selection
// errors are returned unchanged.
func (n *Narrator) Describe(required float64) (string, error) {
	result, err := n.selector.Select(required)
	if err != nil {
		return "", err
	}
	return Message(required, result), nil
}

// Message renders result as the answer to a request for required.
func Message(required float64, result plates.Result) string {
	loaded := PlatesPhrase(result)
	if result.WeightAchieved == required {
		return "You require " + loaded
	}
	return fmt.Sprintf("Required weight could not be met. However with %s you can reach %slbs which is %slb short of what you require",
		loaded, FormatWeight(result.WeightAchieved), FormatWeight(result.Shortfall(required)))
}

// PlatesPhrase lists the plates on the whole bar, heaviest first, for example
// "4 x 10lb plates and 2 x 2.5lb plates".
func PlatesPhrase(result plates.Result) string {
	breakdown := result.Breakdown()
	if len(breakdown) == 0 {
		return emptyBar
	}

	parts := make([]string, 0, len(breakdown))
	for _, pc := range breakdown {
		parts = append(parts, fmt.Sprintf("%d x %slb plates", pc.Count, FormatWeight(pc.Weight)))
	}
	return strings.Join(parts, plateSeparator)
}

// FormatWeight prints whole weights without a decimal point and anything else
// to one decimal place, halves rounded away from zero: 10 -> "10",
// 2.5 -> "2.5", 1.25 -> "1.3".
func FormatWeight(w float64) string {
	if w != math.Trunc(w) {
		return strconv.FormatFloat(math.Round(w*10)/10, 'f', 1, 64)
	}
	return strconv.FormatFloat(w, 'f', 0, 64)
}
