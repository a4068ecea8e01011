/*
 * report.go, part of goligand.
 *
 *
 * Copyright 2025 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package report turns interaction lists into figures: a histogram of
//contact distances and a per-type contact count chart, both saved as
//PNG.
package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/goligand/contact"
)

//DistanceHistogram plots the distance distribution of the given
//interactions and saves it as a PNG file. The extension is appended to
//plotname. bins <= 0 gets a default of 16.
func DistanceHistogram(inters []*contact.Interaction, title, plotname string, bins int) error {
	if len(inters) == 0 {
		return fmt.Errorf("DistanceHistogram: no interactions to plot")
	}
	if bins <= 0 {
		bins = 16
	}
	vals := make(plotter.Values, len(inters))
	for i, in := range inters {
		vals[i] = in.Distance
	}
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = "Distance (A)"
	p.Y.Label.Text = "Contacts"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//TypeCounts plots the number of contacts per interaction type as a
//bar chart and saves it as a PNG file. Bars come out in alphabetical
//type order, so the figure is stable across runs.
func TypeCounts(inters []*contact.Interaction, title, plotname string) error {
	if len(inters) == 0 {
		return fmt.Errorf("TypeCounts: no interactions to plot")
	}
	counts := make(map[string]int)
	for _, in := range inters {
		counts[in.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	vals := make(plotter.Values, len(types))
	for i, t := range types {
		vals[i] = float64(counts[t])
	}
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.Y.Label.Text = "Contacts"
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(types...)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
