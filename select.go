/*
 * select.go, part of goligand.
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

//Mode selects how the ligand part of a complex is identified.
type Mode string

const (
	//ByResname takes the HETATM residues with a given name as the ligand.
	ByResname Mode = "het"
	//ByChain takes a whole chain as the ligand (peptide ligands, mostly).
	ByChain Mode = "chain"
	//Auto takes the largest non-water HETATM residue as the ligand.
	Auto Mode = "auto"
)

//Selection is the partition of one structure into disjoint ligand and
//receptor residue sets. Waters are never part of either set. A
//Selection is built per analysis and not modified afterwards.
type Selection struct {
	Mode     Mode
	Resname  string //resolved ligand residue name ("CHAIN" for ByChain)
	ChainID  string //resolved ligand chain, empty if the ligand spans chains
	Ligand   []*Residue
	Receptor []*Residue
}

//LigandAtoms returns every ligand atom, in file order.
func (S *Selection) LigandAtoms() []*Atom {
	var ret []*Atom
	for _, r := range S.Ligand {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

//ReceptorAtoms returns every receptor atom, in file order.
func (S *Selection) ReceptorAtoms() []*Atom {
	var ret []*Atom
	for _, r := range S.Receptor {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

//LigandResidueIDs returns the chain:name:seq labels of the ligand
//residues, for reports.
func (S *Selection) LigandResidueIDs() []string {
	ret := make([]string, 0, len(S.Ligand))
	for _, r := range S.Ligand {
		ret = append(ret, r.ID())
	}
	return ret
}

//receptorResidues returns the standard, non-water polymer residues of
//the structure, excluding those on the chain excludeChain (pass "" to
//exclude none).
func receptorResidues(s *Structure, excludeChain string) []*Residue {
	var ret []*Residue
	for _, r := range s.Residues() {
		if r.Kind != Polymer || !IsProtein(r.Name) {
			continue
		}
		if excludeChain != "" && r.ChainID == excludeChain {
			continue
		}
		ret = append(ret, r)
	}
	return ret
}

//Resolve partitions a structure into ligand and receptor residues
//according to mode. resname is required for ByResname; chain is
//required for ByChain and optional for ByResname. It returns a
//*SelectionError if the requested ligand cannot be found.
func Resolve(s *Structure, mode Mode, resname, chain string) (*Selection, error) {
	switch mode {
	case ByResname:
		return resolveHet(s, resname, chain)
	case ByChain:
		return resolveChain(s, chain)
	case Auto:
		return resolveAuto(s)
	}
	return nil, &SelectionError{mode: string(mode), resname: resname, chain: chain}
}

func resolveHet(s *Structure, resname, chain string) (*Selection, error) {
	sel := &Selection{Mode: ByResname, Resname: resname, ChainID: chain}
	for _, r := range s.Residues() {
		if r.Kind != Hetero || r.Name != resname {
			continue
		}
		if chain != "" && r.ChainID != chain {
			continue
		}
		sel.Ligand = append(sel.Ligand, r)
	}
	if len(sel.Ligand) == 0 {
		return nil, &SelectionError{mode: string(ByResname), resname: resname, chain: chain}
	}
	if chain == "" && len(sel.Ligand) > 0 {
		sel.ChainID = sel.Ligand[0].ChainID
		for _, r := range sel.Ligand {
			if r.ChainID != sel.ChainID {
				sel.ChainID = "" //ligand copies on several chains
				break
			}
		}
	}
	sel.Receptor = receptorResidues(s, "")
	return sel, nil
}

func resolveChain(s *Structure, chain string) (*Selection, error) {
	c := s.Chain(chain)
	if c == nil {
		return nil, &SelectionError{mode: string(ByChain), chain: chain}
	}
	sel := &Selection{Mode: ByChain, Resname: "CHAIN", ChainID: chain}
	for _, r := range c.Residues {
		if r.Kind == Water {
			continue
		}
		sel.Ligand = append(sel.Ligand, r)
	}
	if len(sel.Ligand) == 0 {
		return nil, &SelectionError{mode: string(ByChain), chain: chain}
	}
	sel.Receptor = receptorResidues(s, chain)
	return sel, nil
}

//resolveAuto picks the non-water HETATM residue with the most atoms,
//breaking ties by first file-order occurrence. Preferring the lowest
//contact distance instead was considered and rejected: the pick must
//not depend on anything downstream of the selection itself.
func resolveAuto(s *Structure) (*Selection, error) {
	var best *Residue
	for _, r := range s.Residues() {
		if r.Kind != Hetero {
			continue
		}
		if best == nil || len(r.Atoms) > len(best.Atoms) {
			best = r
		}
	}
	if best == nil {
		return nil, &SelectionError{mode: string(Auto)}
	}
	sel := &Selection{Mode: Auto, Resname: best.Name, ChainID: best.ChainID}
	sel.Ligand = []*Residue{best}
	sel.Receptor = receptorResidues(s, "")
	return sel, nil
}
