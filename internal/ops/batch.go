package ops

import (
	"fmt"
	"os"

	"github.com/jacksmith/inv/internal/stock"
	"gopkg.in/yaml.v3"
)

// Summary counts the outcomes of a batch.
type Summary struct {
	Applied  int
	Rejected int
	NotFound int
}

// LoadAdjustments reads a YAML or JSON list of {op, item, qty} records.
// Field types are left as decoded; Store.Apply validates them.
func LoadAdjustments(path string) ([]stock.Adjustment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read adjustments file %s: %w", path, err)
	}
	return ParseAdjustments(data)
}

// ParseAdjustments decodes a YAML or JSON list of adjustments.
func ParseAdjustments(data []byte) ([]stock.Adjustment, error) {
	var adjs []stock.Adjustment
	if err := yaml.Unmarshal(data, &adjs); err != nil {
		return nil, fmt.Errorf("failed to parse adjustments: %w", err)
	}
	return adjs, nil
}

// ApplyAll applies adjustments in order. A rejected or missing-item entry
// does not stop the batch.
func ApplyAll(st *stock.Store, adjs []stock.Adjustment) ([]stock.Result, Summary) {
	results := make([]stock.Result, 0, len(adjs))
	var sum Summary
	for _, a := range adjs {
		r := st.Apply(a)
		results = append(results, r)
		switch {
		case r.Applied():
			sum.Applied++
		case r.Outcome == stock.OutcomeNotFound:
			sum.NotFound++
		default:
			sum.Rejected++
		}
	}
	return results, sum
}
