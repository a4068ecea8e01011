/*
 * contact_test.go, part of goligand.
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

package contact

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ligand "github.com/rmera/goligand"
)

func atomLine(record string, serial int, name, resname, chain string, resseq int, x, y, z float64, element string) string {
	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("%-6s%5d %-4s %-3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
		record, serial, name, resname, chain, resseq, x, y, z, 1.0, 0.0, element)
}

//classificationFixture places one receptor atom and one ligand atom
//per y-row, 20 A away from every other row, so each row yields exactly
//one candidate pair and the expected classification is unambiguous.
func classificationFixture() *ligand.Selection {
	var b strings.Builder
	serial := 0
	add := func(record, name, resname, chain string, resseq int, x, y, z float64, element string) {
		serial++
		b.WriteString(atomLine(record, serial, name, resname, chain, resseq, x, y, z, element))
	}
	//row 0: ASP carboxylate O vs ligand N at 3.0 A. Satisfies the
	//hydrogen-bond criteria too; must come out a salt bridge.
	add("ATOM", "OD1", "ASP", "A", 10, 0.0, 0.0, 0.0, "O")
	//row 20: SER hydroxyl O vs ligand O at 3.2 A: hydrogen bond.
	add("ATOM", "OG", "SER", "A", 11, 0.0, 20.0, 0.0, "O")
	//row 40: PHE ring C vs ligand C at 4.8 A: aromatic contact.
	add("ATOM", "CD1", "PHE", "A", 12, 0.0, 40.0, 0.0, "C")
	//row 60: ALA CB vs ligand C at 4.2 A: hydrophobic (ALA has no ring).
	add("ATOM", "CB", "ALA", "A", 13, 0.0, 60.0, 0.0, "C")
	//row 80: GLY backbone N vs ligand C at 3.8 A: no polar/nonpolar
	//class matches, only the generic close contact.
	add("ATOM", "N", "GLY", "A", 14, 0.0, 80.0, 0.0, "N")
	//row 100: VAL CB vs ligand C at 6.0 A: beyond every cutoff.
	add("ATOM", "CB", "VAL", "A", 15, 0.0, 100.0, 0.0, "C")
	//the ligand
	add("HETATM", "N1", "LIG", "L", 1, 3.0, 0.0, 0.0, "N")
	add("HETATM", "O1", "LIG", "L", 1, 3.2, 20.0, 0.0, "O")
	add("HETATM", "C1", "LIG", "L", 1, 4.8, 40.0, 0.0, "C")
	add("HETATM", "C2", "LIG", "L", 1, 4.2, 60.0, 0.0, "C")
	add("HETATM", "C3", "LIG", "L", 1, 3.8, 80.0, 0.0, "C")
	add("HETATM", "C4", "LIG", "L", 1, 6.0, 100.0, 0.0, "C")
	//a ligand hydrogen right on top of the ASP oxygen; must be ignored
	add("HETATM", "H1", "LIG", "L", 1, 1.0, 0.0, 0.0, "H")
	s, err := ligand.ParsePDB(b.String())
	if err != nil {
		panic(err)
	}
	sel, err := ligand.Resolve(s, ligand.ByResname, "LIG", "")
	if err != nil {
		panic(err)
	}
	return sel
}

func TestHeuristicClassification(t *testing.T) {
	inters, err := new(Heuristic).Detect(classificationFixture())
	require.NoError(t, err)
	require.Len(t, inters, 5)
	//ascending distance: 3.0, 3.2, 3.8, 4.2, 4.8
	wantTypes := []string{SaltBridge, HydrogenBond, Close, Hydrophobic, Aromatic}
	wantDists := []float64{3.0, 3.2, 3.8, 4.2, 4.8}
	for i, in := range inters {
		assert.Equal(t, wantTypes[i], in.Type, "interaction %d: %s", i, in)
		assert.InDelta(t, wantDists[i], in.Distance, 1e-6, "interaction %d: %s", i, in)
	}
}

func TestHeuristicSaltBridgePriority(t *testing.T) {
	inters, err := new(Heuristic).Detect(classificationFixture())
	require.NoError(t, err)
	//the ASP OD1 / ligand N pair qualifies as both salt bridge and
	//hydrogen bond; the salt bridge must win
	for _, in := range inters {
		if in.ReceptorResname == "ASP" {
			assert.Equal(t, SaltBridge, in.Type)
			return
		}
	}
	t.Fatal("no ASP interaction found")
}

func TestHeuristicDistanceBound(t *testing.T) {
	inters, err := new(Heuristic).Detect(classificationFixture())
	require.NoError(t, err)
	for _, in := range inters {
		assert.LessOrEqual(t, in.Distance, MaxCutoff, "%s", in)
		//nothing from the 6.0 A row
		assert.NotEqual(t, "VAL", in.ReceptorResname)
		assert.NotEqual(t, "C4", in.LigandAtom)
	}
}

func TestHeuristicSkipsHydrogens(t *testing.T) {
	inters, err := new(Heuristic).Detect(classificationFixture())
	require.NoError(t, err)
	for _, in := range inters {
		assert.NotEqual(t, "H1", in.LigandAtom, "hydrogen made it into %s", in)
	}
}

func TestHeuristicDeterministicOrder(t *testing.T) {
	sel := classificationFixture()
	first, err := new(Heuristic).Detect(sel)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := new(Heuristic).Detect(sel)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMinimalAutoComplex(t *testing.T) {
	//the smallest interesting complex: a 2-residue receptor and a
	//single-atom HETATM ligand 3.0 A from a receptor oxygen
	var b strings.Builder
	b.WriteString(atomLine("ATOM", 1, "N", "GLY", "A", 1, -6.0, 0.0, 0.0, "N"))
	b.WriteString(atomLine("ATOM", 2, "CA", "GLY", "A", 1, -5.0, 0.0, 0.0, "C"))
	b.WriteString(atomLine("ATOM", 3, "O", "GLY", "A", 1, 0.0, 0.0, 0.0, "O"))
	b.WriteString(atomLine("ATOM", 4, "N", "ALA", "A", 2, -6.0, 3.0, 0.0, "N"))
	b.WriteString(atomLine("ATOM", 5, "CA", "ALA", "A", 2, -5.0, 3.0, 0.0, "C"))
	b.WriteString(atomLine("HETATM", 6, "O1", "UNK", "A", 10, 3.0, 0.0, 0.0, "O"))
	s, err := ligand.ParsePDB(b.String())
	require.NoError(t, err)
	sel, err := ligand.Resolve(s, ligand.Auto, "", "")
	require.NoError(t, err)
	assert.Equal(t, "UNK", sel.Resname)
	inters, err := new(Heuristic).Detect(sel)
	require.NoError(t, err)
	require.Len(t, inters, 1)
	assert.Equal(t, HydrogenBond, inters[0].Type)
	assert.InDelta(t, 3.0, inters[0].Distance, 1e-6)
	assert.Equal(t, "O", inters[0].ReceptorAtom)
	assert.Equal(t, "O1", inters[0].LigandAtom)
}

func TestHeuristicNilSelection(t *testing.T) {
	_, err := new(Heuristic).Detect(nil)
	assert.Error(t, err)
}

func TestSortByDistance(t *testing.T) {
	inters := []*Interaction{
		{Type: DelegateHydrogenBond, ReceptorChain: "A", ReceptorResseq: 12, ReceptorAtom: "O", Distance: 3.1},
		{Type: DelegateSaltBridge, ReceptorChain: "A", ReceptorResseq: 10, ReceptorAtom: "OD1", Distance: 2.9},
		{Type: DelegateHydrogenBond, ReceptorChain: "A", ReceptorResseq: 11, ReceptorAtom: "OG", Distance: 3.1},
	}
	SortByDistance(inters)
	assert.Equal(t, 10, inters[0].ReceptorResseq)
	assert.Equal(t, 11, inters[1].ReceptorResseq) //distance tie broken by resseq
	assert.Equal(t, 12, inters[2].ReceptorResseq)
}
