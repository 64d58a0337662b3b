package utils

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

func RenderStraddleRecords(records []eventmodels.StraddleRecord) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Symbol", "Earnings", "Entry", "Exit", "Call", "Put", "Call %", "Put %", "Total %", "Gain"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range records {
		table.Append([]string{
			r.Symbol.String(),
			r.EarningsDate.Format("2006-01-02"),
			r.EntryDate.Format("2006-01-02"),
			r.ExitDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", r.CallStrike),
			fmt.Sprintf("%.2f", r.PutStrike),
			fmt.Sprintf("%.2f", r.CallPriceChangePct),
			fmt.Sprintf("%.2f", r.PutPriceChangePct),
			fmt.Sprintf("%.2f", r.TotalGainPct),
			fmt.Sprintf("%v", r.GainLabel),
		})
	}

	table.Render()

	return display.String()
}

func RenderFeatureRows(rows []eventmodels.FeatureRow) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Symbol", "Earnings", "Expiration", "Call", "Put", "Call Premium", "Put Premium", "C/P Ratio"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range rows {
		ratio := "-"
		if r.CallPutRatio != nil {
			ratio = fmt.Sprintf("%.2f", *r.CallPutRatio)
		}

		table.Append([]string{
			r.Symbol.String(),
			r.EarningsDate.Format("2006-01-02"),
			r.Expiration.Format("2006-01-02"),
			fmt.Sprintf("%.2f", r.CallStrike),
			fmt.Sprintf("%.2f", r.PutStrike),
			fmt.Sprintf("%.2f", r.BuyCallPrice),
			fmt.Sprintf("%.2f", r.BuyPutPrice),
			ratio,
		})
	}

	table.Render()

	return display.String()
}
