/*
 * cif.go, part of goligand.
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
	"bufio"
	"strconv"
	"strings"
)

//The _atom_site tags we consume. auth_* tags are preferred and the
//label_* ones used as fallback, since not every writer emits both.
var cifTags = []string{
	"_atom_site.group_pdb",
	"_atom_site.id",
	"_atom_site.type_symbol",
	"_atom_site.auth_atom_id",
	"_atom_site.label_atom_id",
	"_atom_site.label_alt_id",
	"_atom_site.auth_comp_id",
	"_atom_site.label_comp_id",
	"_atom_site.auth_asym_id",
	"_atom_site.label_asym_id",
	"_atom_site.auth_seq_id",
	"_atom_site.label_seq_id",
	"_atom_site.pdbx_pdb_ins_code",
	"_atom_site.cartn_x",
	"_atom_site.cartn_y",
	"_atom_site.cartn_z",
	"_atom_site.pdbx_pdb_model_num",
}

//cifMap maps lowercased _atom_site tags to their column position in
//the loop.
type cifMap map[string]int

func newCIFMap() cifMap {
	m := make(cifMap, len(cifTags))
	for _, t := range cifTags {
		m[t] = -1
	}
	return m
}

//add records the column of a tag, ignoring tags we don't consume.
func (m cifMap) add(tag string, col int) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if _, ok := m[tag]; ok {
		m[tag] = col
	}
}

//field returns the value of a tag in a data row, or "" when the tag is
//absent. mmCIF uses "." and "?" for missing values; both become "".
func (m cifMap) field(tag string, row []string) string {
	col := m[tag]
	if col < 0 || col >= len(row) {
		return ""
	}
	v := row[col]
	if v == "." || v == "?" {
		return ""
	}
	return v
}

//auth returns the auth_ variant of an _atom_site field, falling back
//to the label_ variant.
func (m cifMap) auth(suffix string, row []string) string {
	if v := m.field("_atom_site.auth_"+suffix, row); v != "" {
		return v
	}
	return m.field("_atom_site.label_"+suffix, row)
}

//parseCIFRow turns one _atom_site data row into an atom plus its
//residue identity, as parsePDBLine does for PDB records.
func parseCIFRow(row []string, m cifMap, lineno int) (at *Atom, chainID, resname string, resseq int, icode byte, kind ResidueKind, err error) {
	fail := func(msg string) (*Atom, string, string, int, byte, ResidueKind, error) {
		return nil, "", "", 0, 0, 0, &FormatError{message: msg, line: lineno}
	}
	at = new(Atom)
	at.Het = m.field("_atom_site.group_pdb", row) != "ATOM"
	at.Name = strings.Trim(m.auth("atom_id", row), `"`)
	at.Element = m.field("_atom_site.type_symbol", row)
	if at.Element == "" {
		at.Element, _ = symbolFromName(at.Name)
	}
	resname = m.auth("comp_id", row)
	chainID = m.auth("asym_id", row)
	if chainID == "" {
		chainID = BlankChain
	}
	if v := m.field("_atom_site.id", row); v != "" {
		if at.Serial, err = strconv.Atoi(v); err != nil {
			return fail("bad atom id " + v)
		}
	}
	seq := m.auth("seq_id", row)
	if seq == "" {
		return fail("no residue sequence number")
	}
	if resseq, err = strconv.Atoi(seq); err != nil {
		return fail("bad residue sequence number " + seq)
	}
	if v := m.field("_atom_site.pdbx_pdb_ins_code", row); v != "" {
		icode = v[0]
	}
	coords := [3]*float64{&at.X, &at.Y, &at.Z}
	for i, tag := range []string{"_atom_site.cartn_x", "_atom_site.cartn_y", "_atom_site.cartn_z"} {
		v := m.field(tag, row)
		if v == "" {
			return fail("missing coordinate " + tag)
		}
		if *coords[i], err = strconv.ParseFloat(v, 64); err != nil {
			return fail("bad coordinate " + v)
		}
	}
	switch {
	case IsWater(resname):
		kind = Water
	case at.Het:
		kind = Hetero
	default:
		kind = Polymer
	}
	return at, chainID, resname, resseq, icode, kind, nil
}

//ParseCIF parses mmCIF/PDBx text into a Structure. It consumes the
//_atom_site loop only, keeps the first model of multi-model entries
//and applies the same alternate-location and blank-chain rules as
//ParsePDB. Everything else in the file (entities, cells, chemistry
//dictionaries) is skipped.
func ParseCIF(text string) (*Structure, error) {
	s := new(Structure)
	m := newCIFMap()
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 1024), 1024*1024)
	natoms := 0
	lineno := 0
	col := 0
	inHeader := false //reading _atom_site tag lines
	inData := false   //reading _atom_site data rows
	firstModel := ""
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "_atom_site.") && !inData {
			inHeader = true
			m.add(lower, col)
			col++
			continue
		}
		if inHeader && !strings.HasPrefix(line, "_") {
			inHeader = false
			inData = true
		}
		if !inData {
			continue
		}
		//a new tag or loop ends the _atom_site data
		if strings.HasPrefix(line, "_") || strings.HasPrefix(lower, "loop_") || strings.HasPrefix(lower, "data_") {
			break
		}
		row := strings.Fields(line)
		if model := m.field("_atom_site.pdbx_pdb_model_num", row); model != "" {
			if firstModel == "" {
				firstModel = model
			} else if model != firstModel {
				break
			}
		}
		if alt := m.field("_atom_site.label_alt_id", row); alt != "" && alt != "A" {
			continue
		}
		at, chainID, resname, resseq, icode, kind, err := parseCIFRow(row, m, lineno)
		if err != nil {
			return nil, errDecorate(err, "ParseCIF")
		}
		at.index = natoms
		natoms++
		s.appendAtom(at, chainID, resname, resseq, icode, kind)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{message: err.Error(), deco: []string{"ParseCIF"}}
	}
	if natoms == 0 {
		return nil, &FormatError{message: "no _atom_site records found", deco: []string{"ParseCIF"}}
	}
	return s, nil
}
