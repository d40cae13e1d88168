package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuotationOrder(t *testing.T) {
	report := &QuotationReport{
		Quotations: []QuotationRow{
			{Incoterm: IncotermCIF, Freight: FreightMaritime},
			{Incoterm: IncotermEXW, Freight: FreightNotApplicable},
			{Incoterm: IncotermFOB, Freight: FreightAir},
			{Incoterm: IncotermFOB, Freight: FreightMaritime},
		},
	}

	Normalize(report)

	got := make([]string, len(report.Quotations))
	for i, q := range report.Quotations {
		got[i] = string(q.Incoterm) + "/" + string(q.Freight)
	}
	assert.Equal(t, []string{
		"EXW/No Aplica",
		"FOB/Marítimo",
		"FOB/Aéreo",
		"CIF/Marítimo",
	}, got)
}

func TestNormalizeIsStableOnTies(t *testing.T) {
	report := &QuotationReport{
		Quotations: []QuotationRow{
			{Incoterm: IncotermFOB, Freight: FreightMaritime, TransitTime: "first"},
			{Incoterm: IncotermFOB, Freight: FreightMaritime, TransitTime: "second"},
		},
	}

	Normalize(report)

	require.Len(t, report.Quotations, 2)
	assert.Equal(t, "first", report.Quotations[0].TransitTime)
	assert.Equal(t, "second", report.Quotations[1].TransitTime)
}

func TestNormalizeScenariosByRankOnly(t *testing.T) {
	report := &QuotationReport{
		ScenarioAnalysis: []ScenarioRow{
			{Option: OptionCourier, Rank: 3},
			{Option: OptionMaritime, Rank: 1, IsRecommended: true},
			{Option: OptionAir, Rank: 2},
		},
	}

	Normalize(report)

	require.Len(t, report.ScenarioAnalysis, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{
		report.ScenarioAnalysis[0].Rank,
		report.ScenarioAnalysis[1].Rank,
		report.ScenarioAnalysis[2].Rank,
	})

	recommended := 0
	for _, s := range report.ScenarioAnalysis {
		if s.IsRecommended {
			recommended++
		}
	}
	assert.Equal(t, 1, recommended, "normalization must not alter flag values")
	assert.True(t, report.ScenarioAnalysis[0].IsRecommended)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	build := func() *QuotationReport {
		return &QuotationReport{
			Quotations: []QuotationRow{
				{Incoterm: IncotermCIF, Freight: FreightAir},
				{Incoterm: IncotermEXW, Freight: FreightNotApplicable},
				{Incoterm: IncotermCIF, Freight: FreightMaritime},
			},
			ScenarioAnalysis: []ScenarioRow{{Option: OptionAir, Rank: 2}, {Option: OptionMaritime, Rank: 1}},
		}
	}
	a, b := build(), build()
	Normalize(a)
	Normalize(b)
	assert.Equal(t, a, b)
}
