/*
 * select_test.go, part of goligand.
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

package ligand

import "testing"

//checkSelection fails the test if the selection shares residues
//between ligand and receptor, or contains water on either side.
func checkSelection(Te *testing.T, sel *Selection) {
	inLigand := make(map[*Residue]bool)
	for _, r := range sel.Ligand {
		if r.Kind == Water {
			Te.Errorf("water residue %s selected as ligand", r.ID())
		}
		inLigand[r] = true
	}
	for _, r := range sel.Receptor {
		if r.Kind == Water {
			Te.Errorf("water residue %s selected as receptor", r.ID())
		}
		if inLigand[r] {
			Te.Errorf("residue %s is in both the ligand and the receptor", r.ID())
		}
	}
}

func TestResolveHet(Te *testing.T) {
	s, err := ParsePDB(testComplex())
	if err != nil {
		Te.Fatal(err)
	}
	sel, err := Resolve(s, ByResname, "LIG", "")
	if err != nil {
		Te.Fatal(err)
	}
	checkSelection(Te, sel)
	if len(sel.Ligand) != 1 || sel.Ligand[0].Name != "LIG" {
		Te.Fatalf("het selection got %d ligand residues, wanted the 1 LIG", len(sel.Ligand))
	}
	if sel.ChainID != "A" {
		Te.Errorf("het selection resolved chain %q, wanted A", sel.ChainID)
	}
	//receptor holds every protein residue, chains A and B both
	if len(sel.Receptor) != 5 {
		Te.Errorf("het selection got %d receptor residues, wanted 5", len(sel.Receptor))
	}
}

func TestResolveHetMissing(Te *testing.T) {
	s, err := ParsePDB(testComplex())
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Resolve(s, ByResname, "XYZ", "")
	if err == nil {
		Te.Fatal("selecting an absent HETATM residue did not fail")
	}
	if _, ok := err.(*SelectionError); !ok {
		Te.Errorf("missing-ligand error has type %T, wanted *SelectionError", err)
	}
	//present resname, wrong chain
	if _, err = Resolve(s, ByResname, "LIG", "B"); err == nil {
		Te.Error("selecting LIG on the wrong chain did not fail")
	}
}

func TestResolveChain(Te *testing.T) {
	s, err := ParsePDB(testComplex())
	if err != nil {
		Te.Fatal(err)
	}
	sel, err := Resolve(s, ByChain, "", "B")
	if err != nil {
		Te.Fatal(err)
	}
	checkSelection(Te, sel)
	if len(sel.Ligand) != 2 {
		Te.Errorf("chain selection got %d ligand residues, wanted the 2 on chain B", len(sel.Ligand))
	}
	if sel.Resname != "CHAIN" {
		Te.Errorf("chain selection resolved resname %q, wanted CHAIN", sel.Resname)
	}
	for _, r := range sel.Receptor {
		if r.ChainID == "B" {
			Te.Errorf("ligand-chain residue %s leaked into the receptor", r.ID())
		}
	}
	if _, err = Resolve(s, ByChain, "", "Z"); err == nil {
		Te.Error("selecting an absent chain did not fail")
	}
}

func TestResolveAuto(Te *testing.T) {
	s, err := ParsePDB(testComplex())
	if err != nil {
		Te.Fatal(err)
	}
	sel, err := Resolve(s, Auto, "", "")
	if err != nil {
		Te.Fatal(err)
	}
	checkSelection(Te, sel)
	//LIG (5 atoms) beats SO4 (3) and the potassium ion (1); the water
	//is not a candidate at all
	if len(sel.Ligand) != 1 || sel.Ligand[0].Name != "LIG" {
		Te.Fatalf("auto selection picked %v, wanted the single LIG residue", sel.LigandResidueIDs())
	}
}

func TestResolveAutoNoLigand(Te *testing.T) {
	text := atomLine("ATOM", 1, "CA", "GLY", "A", 1, 0.0, 0.0, 0.0, "C") +
		atomLine("HETATM", 2, "O", "HOH", "A", 2, 5.0, 0.0, 0.0, "O")
	s, err := ParsePDB(text)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = Resolve(s, Auto, "", ""); err == nil {
		Te.Error("auto selection on a ligand-less structure did not fail")
	}
}

func TestInspect(Te *testing.T) {
	s, err := ParsePDB(testComplex())
	if err != nil {
		Te.Fatal(err)
	}
	inv := Inspect(s)
	if len(inv.Chains) != 3 {
		Te.Fatalf("inventory has %d chains, wanted 3", len(inv.Chains))
	}
	//chains come out sorted: A, B, then the blank sentinel
	if inv.Chains[0].Chain != "A" || inv.Chains[0].RoleHint != "protein_like" {
		Te.Errorf("chain A inventory: %+v", inv.Chains[0])
	}
	if inv.Chains[2].Chain != BlankChain || inv.Chains[2].RoleHint != "ligand_like" {
		Te.Errorf("blank chain inventory: %+v", inv.Chains[2])
	}
	//LIG, SO4 and the potassium; the water is not a candidate
	if len(inv.HetLigands) != 3 {
		Te.Fatalf("inventory has %d het ligands, wanted 3", len(inv.HetLigands))
	}
	for _, h := range inv.HetLigands {
		if h.Resname == "HOH" {
			Te.Error("water listed as a candidate ligand")
		}
	}
}
