package quote

import "sort"

// Display ranks. Rows compare by incoterm first, then freight mode;
// scenarios by rank alone.
var incotermRank = map[Incoterm]int{
	IncotermEXW: 1,
	IncotermFOB: 2,
	IncotermCIF: 3,
}

var freightRank = map[FreightMode]int{
	FreightNotApplicable: 0,
	FreightMaritime:      1,
	FreightAir:           2,
}

// Normalize sorts the report into canonical display order in place.
// Deterministic: equal keys keep their input order, and no value other
// than position is touched.
func Normalize(report *QuotationReport) {
	sort.SliceStable(report.Quotations, func(i, j int) bool {
		a, b := report.Quotations[i], report.Quotations[j]
		if incotermRank[a.Incoterm] != incotermRank[b.Incoterm] {
			return incotermRank[a.Incoterm] < incotermRank[b.Incoterm]
		}
		return freightRank[a.Freight] < freightRank[b.Freight]
	})
	sort.SliceStable(report.ScenarioAnalysis, func(i, j int) bool {
		return report.ScenarioAnalysis[i].Rank < report.ScenarioAnalysis[j].Rank
	})
}
