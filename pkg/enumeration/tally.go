package enumeration

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/limaJavier/lilmiss/pkg/model"
	"github.com/samber/lo"
)

// Tally counts verdicts, and the rules that produced them, over a set of tile configurations
type Tally struct {
	Included uint64
	Excluded uint64
	PerRule  [model.RuleCount]uint64
}

func (tally *Tally) Add(status model.Status, rule model.Rule) {
	if status == model.MustInclude {
		tally.Included++
	} else {
		tally.Excluded++
	}
	tally.PerRule[rule]++
}

func (tally *Tally) Merge(other Tally) {
	tally.Included += other.Included
	tally.Excluded += other.Excluded
	for rule := range tally.PerRule {
		tally.PerRule[rule] += other.PerRule[rule]
	}
}

func (tally Tally) Total() uint64 {
	return tally.Included + tally.Excluded
}

// WriteCSV writes one record per rule along with the verdict it produces
func (tally Tally) WriteCSV(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"rule", "status", "count"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	records := lo.Map(model.Rules(), func(rule model.Rule, _ int) []string {
		return []string{rule.String(), ruleStatus(rule).String(), fmt.Sprintf("%d", tally.PerRule[rule])}
	})
	if err := csvWriter.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}

func ruleStatus(rule model.Rule) model.Status {
	if rule == model.RuleDefault {
		return model.MustExclude
	}
	return model.MustInclude
}
