package quote

import (
	"fmt"
	"math"
)

// totalTolerance bounds the relative difference accepted between a stated
// total and the breakdown sum, covering float round trips through JSON.
const totalTolerance = 1e-6

// VerifyReport checks the numeric invariants the oracle is asked for but
// not trusted on. A violation is a schema error: the report is rejected,
// never silently accepted.
func VerifyReport(report *QuotationReport) error {
	if len(report.Quotations) == 0 {
		return fmt.Errorf("report contains no quotations")
	}
	for i, q := range report.Quotations {
		if _, ok := incotermRank[q.Incoterm]; !ok {
			return fmt.Errorf("quotation %d: unknown incoterm %q", i, q.Incoterm)
		}
		if _, ok := freightRank[q.Freight]; !ok {
			return fmt.Errorf("quotation %d: unknown freight mode %q", i, q.Freight)
		}
		if err := verifyBreakdown(i, q); err != nil {
			return err
		}
	}
	return verifyScenarios(report.ScenarioAnalysis)
}

func verifyBreakdown(i int, q QuotationRow) error {
	b := q.Breakdown
	for name, v := range map[string]float64{
		"valorProduccion":         b.ProductionValue,
		"transporteLocal":         b.LocalTransport,
		"gastosAduanaExportacion": b.ExportCustoms,
		"fleteInternacional":      b.IntlFreight,
		"seguro":                  b.Insurance,
	} {
		if v < 0 {
			return fmt.Errorf("quotation %d: negative cost component %s", i, name)
		}
	}
	if q.Incoterm == IncotermEXW {
		if b.IntlFreight != 0 || b.Insurance != 0 {
			return fmt.Errorf("quotation %d: EXW must carry zero freight and insurance", i)
		}
		if q.Freight != FreightNotApplicable {
			return fmt.Errorf("quotation %d: EXW freight mode must be %q", i, FreightNotApplicable)
		}
	}
	sum := b.Sum()
	diff := math.Abs(sum - q.TotalCost)
	if diff > totalTolerance*math.Max(1, math.Abs(q.TotalCost)) {
		return fmt.Errorf("quotation %d: breakdown sums to %.4f, stated total is %.4f", i, sum, q.TotalCost)
	}
	return nil
}

func verifyScenarios(scenarios []ScenarioRow) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("report contains no scenario analysis")
	}
	recommended := 0
	ranks := make(map[int]struct{}, len(scenarios))
	for i, s := range scenarios {
		switch s.Option {
		case OptionMaritime, OptionAir, OptionCourier:
		default:
			return fmt.Errorf("scenario %d: unknown shipping option %q", i, s.Option)
		}
		if s.Rank <= 0 {
			return fmt.Errorf("scenario %d: rank must be positive, got %d", i, s.Rank)
		}
		if _, dup := ranks[s.Rank]; dup {
			return fmt.Errorf("scenario %d: duplicate rank %d", i, s.Rank)
		}
		ranks[s.Rank] = struct{}{}
		if s.IsRecommended {
			recommended++
		}
	}
	if recommended != 1 {
		return fmt.Errorf("exactly one scenario must be recommended, got %d", recommended)
	}
	return nil
}
