/*
 * cif_test.go, part of goligand.
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

import (
	"os"
	"path/filepath"
	"testing"
)

const testCIF = `data_test
#
loop_
_entity.id
_entity.type
1 polymer
2 non-polymer
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_alt_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.auth_seq_id
_atom_site.pdbx_PDB_ins_code
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.pdbx_PDB_model_num
ATOM   1 N N   . ASP A 30 ? 0.000 0.000 0.000 1
ATOM   2 C CA  . ASP A 30 ? 1.500 0.000 0.000 1
ATOM   3 O OD1 . ASP A 30 ? 2.500 1.000 0.000 1
ATOM   4 O OD1 B ASP A 30 ? 2.600 1.100 0.000 1
HETATM 5 N N1  . LIG A 201 ? 5.000 0.000 0.000 1
HETATM 6 O O   . HOH A 301 ? 15.000 0.000 0.000 1
ATOM   1 N N   . ASP A 30 ? 9.000 9.000 9.000 2
#
`

func TestParseCIF(Te *testing.T) {
	s, err := ParseCIF(testCIF)
	if err != nil {
		Te.Fatal(err)
	}
	//6 rows in model 1, one of them an altloc B duplicate
	if s.Len() != 5 {
		Te.Fatalf("parsed %d atoms, wanted 5", s.Len())
	}
	res := s.Residues()
	if len(res) != 3 {
		Te.Fatalf("parsed %d residues, wanted 3", len(res))
	}
	if res[0].Name != "ASP" || res[0].Kind != Polymer || res[0].SeqNum != 30 {
		Te.Errorf("first residue parsed as %+v", res[0])
	}
	if res[1].Name != "LIG" || res[1].Kind != Hetero {
		Te.Errorf("ligand residue parsed as %+v", res[1])
	}
	if res[2].Kind != Water {
		Te.Errorf("water residue parsed as kind %d", res[2].Kind)
	}
	//the second model's ASP N must not have overwritten the first's
	if at := res[0].Atoms[0]; at.X != 0.0 {
		Te.Errorf("atom from the second model leaked in: %v", at)
	}
}

func TestParseCIFErrors(Te *testing.T) {
	if _, err := ParseCIF("data_empty\n#\n"); err == nil {
		Te.Error("parsing a CIF with no _atom_site loop did not fail")
	}
	bad := `loop_
_atom_site.group_PDB
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.auth_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
ATOM CA GLY A 1 0.0 oops 0.0
`
	_, err := ParseCIF(bad)
	if err == nil {
		Te.Fatal("malformed coordinate did not fail the parse")
	}
	if _, ok := err.(*FormatError); !ok {
		Te.Errorf("malformed-record error has type %T, wanted *FormatError", err)
	}
}

func TestReadFileDispatch(Te *testing.T) {
	dir := Te.TempDir()
	cifPath := filepath.Join(dir, "complex.cif")
	if err := os.WriteFile(cifPath, []byte(testCIF), 0644); err != nil {
		Te.Fatal(err)
	}
	pdbPath := filepath.Join(dir, "complex.pdb")
	if err := os.WriteFile(pdbPath, []byte(testComplex()), 0644); err != nil {
		Te.Fatal(err)
	}
	s, err := ReadFile(cifPath)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Len() != 5 {
		Te.Errorf("read %d atoms from the cif file, wanted 5", s.Len())
	}
	s, err = ReadFile(pdbPath)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Len() != testComplexAtoms {
		Te.Errorf("read %d atoms from the pdb file, wanted %d", s.Len(), testComplexAtoms)
	}
}
