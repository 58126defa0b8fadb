// Package report renders damage distributions as printable PDF bar charts
// and plain-text tables.
package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"dicesim/internal/dmgmap"
	"dicesim/internal/engine"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	margin    = 40
	chartTop  = 150.0
	chartH    = 420.0
	fontSize  = 9
	titleSize = 16
	labelSize = 7
	maxLabels = 24
)

// Result is one calculated matchup.
type Result struct {
	Name     string
	Attacker string
	Defender string
	Options  engine.Options
	Dist     map[int]float64
}

// PDF returns a document with one bar-chart page per result. Bars right of
// zero are damage to the defender, left of zero damage to the attacker.
func PDF(title string, results []Result) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)

	for i := range results {
		pdf.AddPage()
		drawResult(pdf, title, &results[i])
	}
	if len(results) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.Text(margin, margin+20, "No matchups.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawResult(pdf *gofpdf.Fpdf, title string, r *Result) {
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 18, r.Name, "", 1, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(pageW-margin-200, margin+2)
		pdf.CellFormat(200, 12, title, "", 0, "R", false, 0, "")
	}

	sum := engine.Summarize(r.Dist)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin, margin+26)
	pdf.CellFormat(pageW-2*margin, 12,
		fmt.Sprintf("%s attacks %s  |  %d simulations, %d round(s)", r.Attacker, r.Defender, r.Options.NumSimulations, r.Options.NumRounds),
		"", 1, "L", false, 0, "")
	pdf.SetX(margin)
	pdf.CellFormat(pageW-2*margin, 12,
		fmt.Sprintf("mean %+.3f  |  defender damaged %.1f%%  |  attacker damaged %.1f%%  |  no damage %.1f%%",
			sum.Mean, 100*sum.DefenderDamaged, 100*sum.AttackerDamaged, 100*sum.NoDamage),
		"", 1, "L", false, 0, "")

	drawChart(pdf, r.Dist)
}

func drawChart(pdf *gofpdf.Fpdf, dist map[int]float64) {
	keys := dmgmap.SortedKeys(dist)
	if len(keys) == 0 {
		return
	}
	lo, hi := keys[0], keys[len(keys)-1]
	n := hi - lo + 1

	maxP := 0.0
	for _, p := range dist {
		maxP = math.Max(maxP, p)
	}
	if maxP == 0 {
		return
	}

	chartW := float64(pageW - 2*margin)
	slot := chartW / float64(n)
	barW := slot * 0.8
	base := chartTop + chartH

	// Axes
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(1)
	pdf.Line(margin, base, margin+chartW, base)
	pdf.Line(margin, chartTop, margin, base)

	// Horizontal grid at quarters of the tallest bar
	pdf.SetFont("Helvetica", "", labelSize)
	pdf.SetDrawColor(210, 210, 210)
	pdf.SetLineWidth(0.5)
	for i := 1; i <= 4; i++ {
		y := base - chartH*float64(i)/4
		pdf.Line(margin, y, margin+chartW, y)
		pdf.SetXY(margin-34, y-4)
		pdf.CellFormat(32, 8, fmt.Sprintf("%.1f%%", 100*maxP*float64(i)/4), "", 0, "R", false, 0, "")
	}

	labelEvery := 1
	if n > maxLabels {
		labelEvery = (n + maxLabels - 1) / maxLabels
	}

	for i := 0; i < n; i++ {
		dmg := lo + i
		x := margin + float64(i)*slot + (slot-barW)/2
		if p := dist[dmg]; p > 0 {
			h := chartH * p / maxP
			setBarColor(pdf, dmg)
			pdf.Rect(x, base-h, barW, h, "F")
		}
		if dmg%labelEvery == 0 {
			pdf.SetTextColor(30, 30, 30)
			pdf.SetXY(x-4, base+4)
			pdf.CellFormat(barW+8, 8, fmt.Sprintf("%d", dmg), "", 0, "C", false, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "I", fontSize)
	pdf.SetXY(margin, base+18)
	pdf.CellFormat(chartW, 10, "net damage (negative: attacker takes damage)", "", 0, "C", false, 0, "")
}

func setBarColor(pdf *gofpdf.Fpdf, dmg int) {
	switch {
	case dmg > 0:
		pdf.SetFillColor(180, 40, 40)
	case dmg < 0:
		pdf.SetFillColor(40, 80, 170)
	default:
		pdf.SetFillColor(130, 130, 130)
	}
}

// Text writes r as an aligned table of damage, probability and cumulative
// probability.
func Text(w io.Writer, r Result) error {
	sum := engine.Summarize(r.Dist)
	if _, err := fmt.Fprintf(w, "%s (%s vs %s, %d rounds)\n", r.Name, r.Attacker, r.Defender, r.Options.NumRounds); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "damage\tprob\tcumulative\t")
	cum := 0.0
	for _, dmg := range dmgmap.SortedKeys(r.Dist) {
		p := r.Dist[dmg]
		cum += p
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t\n", dmg, p, cum)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "mean %+.3f, defender damaged %.4f, attacker damaged %.4f\n\n",
		sum.Mean, sum.DefenderDamaged, sum.AttackerDamaged)
	return err
}
