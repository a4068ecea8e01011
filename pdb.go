/*
 * pdb.go, part of goligand.
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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//BlankChain is the sentinel chain id used when the chain column of a
//record is blank.
const BlankChain = "_"

//parsePDBLine parses one valid ATOM or HETATM line. It returns the atom
//and its residue identity. Only the element guess is allowed to fail
//silently; a malformed fixed-column field fails the line.
func parsePDBLine(line string, lineno int) (at *Atom, chainID, resname string, resseq int, icode byte, kind ResidueKind, err error) {
	if len(line) < 54 {
		return nil, "", "", 0, 0, 0, &FormatError{message: "record too short for coordinates", line: lineno}
	}
	errs := make([]error, 5)
	at = new(Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	at.Serial, errs[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	at.Name = strings.TrimSpace(line[12:16])
	resname = strings.TrimSpace(line[17:20])
	chainID = strings.TrimSpace(line[21:22])
	if chainID == "" {
		chainID = BlankChain
	}
	resseq, errs[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if line[26] != ' ' {
		icode = line[26]
	}
	at.X, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	at.Y, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	at.Z, errs[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range errs {
		if e != nil {
			return nil, "", "", 0, 0, 0, &FormatError{message: e.Error(), line: lineno}
		}
	}
	if len(line) >= 78 {
		at.Element = strings.TrimSpace(line[76:78])
	}
	if at.Element == "" {
		//no error checking: an unknown element just stays empty and the
		//atom won't match any chemical class.
		at.Element, _ = symbolFromName(at.Name)
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

//ParsePDB parses PDB text into a Structure. It reads only the first
//MODEL of multi-model files, keeps one alternate location per atom
//(the blank or "A" one) and normalizes blank chain ids to BlankChain.
//It returns a *FormatError, and no structure at all, if no ATOM/HETATM
//record parses or if any fixed-column field of one of them is
//malformed.
func ParsePDB(text string) (*Structure, error) {
	s := new(Structure)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 1024), 1024*1024)
	natoms := 0
	lineno := 0
	inFirstModel := true
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model is read
		}
		if strings.HasPrefix(line, "MODEL") {
			if !inFirstModel {
				break
			}
			inFirstModel = false
			continue
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) >= 17 && line[16] != ' ' && line[16] != 'A' {
			continue //alternate location we don't keep
		}
		at, chainID, resname, resseq, icode, kind, err := parsePDBLine(line, lineno)
		if err != nil {
			return nil, errDecorate(err, "ParsePDB")
		}
		at.index = natoms
		natoms++
		s.appendAtom(at, chainID, resname, resseq, icode, kind)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{message: err.Error(), deco: []string{"ParsePDB"}}
	}
	if natoms == 0 {
		return nil, &FormatError{message: "no ATOM/HETATM records found", deco: []string{"ParsePDB"}}
	}
	return s, nil
}

//readTextFile reads a whole file as text. Files ending in .gz or .zst
//are transparently decompressed first, as goChem does for
//trajectories; anything else is assumed to be plain text. It also
//returns the path with any compression extension stripped, so callers
//can dispatch on the real format.
func readTextFile(path string) (text, stripped string, rerr error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	stripped = path
	t := strings.Split(path, ".")
	switch strings.ToLower(t[len(t)-1]) {
	case "gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return "", "", &FormatError{message: err.Error(), deco: []string{"readTextFile"}}
		}
		defer gz.Close()
		r = gz
		stripped = strings.Join(t[:len(t)-1], ".")
	case "zst":
		zs, err := zstd.NewReader(r)
		if err != nil {
			return "", "", &FormatError{message: err.Error(), deco: []string{"readTextFile"}}
		}
		defer zs.Close()
		r = zs
		stripped = strings.Join(t[:len(t)-1], ".")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", "", &FormatError{message: err.Error(), deco: []string{"readTextFile"}}
	}
	return string(b), stripped, nil
}

//ReadPDBFile reads a PDB file, possibly gzip or zstd compressed, and
//parses it with ParsePDB.
func ReadPDBFile(path string) (*Structure, error) {
	text, _, err := readTextFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePDB(text)
}

//ReadCIFFile reads an mmCIF file, possibly gzip or zstd compressed,
//and parses it with ParseCIF.
func ReadCIFFile(path string) (*Structure, error) {
	text, _, err := readTextFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCIF(text)
}

//ReadFile reads a structure file in either format, dispatching on the
//extension: .cif (also compressed, as in .cif.gz) is parsed as mmCIF,
//anything else as PDB.
func ReadFile(path string) (*Structure, error) {
	text, stripped, err := readTextFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(stripped), ".cif") {
		return ParseCIF(text)
	}
	return ParsePDB(text)
}

//pdbName pads an atom name into its 4 columns. Names shorter than 4
//characters start one column in, per the PDB convention.
func pdbName(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf(" %-3s", name)
}

//WritePDB writes the structure back as PDB text. Water and HETATM
//residues become HETATM records; everything else, ATOM records. Chains
//are separated by TER records, and the sentinel blank chain id is
//written back as a blank.
func WritePDB(s *Structure) string {
	var b strings.Builder
	for _, c := range s.Chains() {
		chain := c.ID
		if chain == BlankChain {
			chain = " "
		}
		for _, r := range c.Residues {
			record := "ATOM"
			if r.Kind != Polymer {
				record = "HETATM"
			}
			icode := byte(' ')
			if r.ICode != 0 {
				icode = r.ICode
			}
			for _, at := range r.Atoms {
				fmt.Fprintf(&b, "%-6s%5d %-4s %-3s %1s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
					record, at.Serial, pdbName(at.Name), r.Name, chain, r.SeqNum, icode,
					at.X, at.Y, at.Z, 1.0, 0.0, at.Element)
			}
		}
		b.WriteString("TER\n")
	}
	b.WriteString("END\n")
	return b.String()
}
