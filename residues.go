/*
 * residues.go, part of goligand.
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

import "fmt"

//The 20 standard aminoacid residues.
//Note that just protein chains are considered "polymer" here; this
//library does not deal with nucleic acids.
var proteinResidues = map[string]bool{
	"ALA": true,
	"ARG": true,
	"ASN": true,
	"ASP": true,
	"CYS": true,
	"GLN": true,
	"GLU": true,
	"GLY": true,
	"HIS": true,
	"ILE": true,
	"LEU": true,
	"LYS": true,
	"MET": true,
	"PHE": true,
	"PRO": true,
	"SER": true,
	"THR": true,
	"TRP": true,
	"TYR": true,
	"VAL": true,
}

//Residue names used for water in PDB files.
var waterResidues = map[string]bool{
	"HOH": true,
	"WAT": true,
	"H2O": true,
}

//Residues with an aromatic ring in the side chain.
var aromaticResidues = map[string]bool{
	"PHE": true,
	"TYR": true,
	"TRP": true,
	"HIS": true,
}

//Charged-group atoms per residue: carboxylate oxygens, the lysine
//amine nitrogen, the arginine guanidinium nitrogens and the (possibly)
//protonated histidine ring nitrogens. Used for the salt-bridge class.
var chargedGroupAtoms = map[string]map[string]bool{
	"ASP": {"OD1": true, "OD2": true},
	"GLU": {"OE1": true, "OE2": true},
	"LYS": {"NZ": true},
	"ARG": {"NE": true, "NH1": true, "NH2": true},
	"HIS": {"ND1": true, "NE2": true},
}

//IsProtein returns whether resname is one of the 20 standard aminoacids.
func IsProtein(resname string) bool {
	return proteinResidues[resname]
}

//IsWater returns whether resname is a water residue name.
func IsWater(resname string) bool {
	return waterResidues[resname]
}

//IsAromatic returns whether resname has an aromatic side chain.
func IsAromatic(resname string) bool {
	return aromaticResidues[resname]
}

//Charged returns whether the atom belongs to a charged group. For
//standard residues this is a fixed residue/atom-name lookup. For
//HETATM residues there is no dictionary to consult, so any nitrogen
//or oxygen is taken as a charged-group candidate; this errs towards
//reporting a salt bridge, which the caller bounds with the distance
//cutoff anyway.
func Charged(res *Residue, at *Atom) bool {
	if res.Kind != Polymer {
		return at.Element == "N" || at.Element == "O"
	}
	names, ok := chargedGroupAtoms[res.Name]
	return ok && names[at.Name]
}

//DonorAcceptor returns whether the atom is a heavy atom that can act
//as hydrogen-bond donor or acceptor (N, O or S).
func DonorAcceptor(at *Atom) bool {
	switch at.Element {
	case "N", "O", "S":
		return true
	}
	return false
}

//Nonpolar returns whether the atom belongs to the nonpolar
//carbon/sulfur class used for hydrophobic contacts.
func Nonpolar(at *Atom) bool {
	return at.Element == "C" || at.Element == "S"
}

//symbolFromName guesses a chemical element symbol from a PDB atom name.
//Mostly based on AMBER names, and only dealing with common bio-elements.
//Used when the element columns of a record are absent or blank.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || (len(name) > 0 && name[0] == 'H') { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name == "" {
		return "", fmt.Errorf("empty PDB atom name")
	} else if name[0] == 'C' {
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if len(name) >= 2 && name[0:2] == "ZN" {
		symbol = "Zn"
	} else if len(name) >= 2 && name[0:2] == "MG" {
		symbol = "Mg"
	} else if len(name) >= 2 && name[0:2] == "FE" {
		symbol = "Fe"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("couldn't guess element symbol from PDB name %q", name)
	}
	return symbol, nil
}
