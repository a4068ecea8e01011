/*
 * contact.go, part of goligand.
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

//Package contact enumerates and classifies non-covalent receptor-ligand
//atomic contacts over a ligand.Selection.
package contact

import (
	"fmt"
	"sort"

	ligand "github.com/rmera/goligand"
)

//The interaction types the heuristic engine can produce. The "_like"
//suffix is deliberate: these come from distances and name lookups, not
//from real chemical perception.
const (
	SaltBridge   = "salt_bridge_like"
	HydrogenBond = "hydrogen_bond_like"
	Aromatic     = "aromatic_contact"
	Hydrophobic  = "hydrophobic_contact"
	Close        = "close_contact"
)

//Distance cutoffs (A) per interaction type.
const (
	SaltBridgeCutoff   = 4.0
	HydrogenBondCutoff = 3.5
	AromaticCutoff     = 5.0
	HydrophobicCutoff  = 4.5
	CloseCutoff        = 4.0
	//MaxCutoff is the largest of the cutoffs; no interaction can ever
	//span a distance beyond it.
	MaxCutoff = AromaticCutoff
)

//Interaction is one classified contact between a receptor atom and a
//ligand atom. It is produced by an engine and not modified afterwards.
type Interaction struct {
	Type            string  `json:"interaction_type"`
	ReceptorChain   string  `json:"receptor_chain"`
	ReceptorResname string  `json:"receptor_resname"`
	ReceptorResseq  int     `json:"receptor_resseq"`
	ReceptorAtom    string  `json:"receptor_atom"`
	LigandChain     string  `json:"ligand_chain"`
	LigandResname   string  `json:"ligand_resname"`
	LigandResseq    int     `json:"ligand_resseq"`
	LigandAtom      string  `json:"ligand_atom"`
	Distance        float64 `json:"distance"` //A
	recIndex        int     //file-order indexes of the 2 atoms, for
	ligIndex        int     //deterministic ordering. 0 for delegate output.
}

//String returns a one-line description of the interaction.
func (I *Interaction) String() string {
	return fmt.Sprintf("%s %s:%s:%d:%s -- %s:%s:%d:%s %.3f A", I.Type,
		I.ReceptorChain, I.ReceptorResname, I.ReceptorResseq, I.ReceptorAtom,
		I.LigandChain, I.LigandResname, I.LigandResseq, I.LigandAtom, I.Distance)
}

//Engine is the contact-detection capability. The heuristic engine here
//and any chemistry-aware Delegate both satisfy it; nothing outside the
//orchestrator cares which one ran.
type Engine interface {
	Detect(sel *ligand.Selection) ([]*Interaction, error)
}

//Heuristic is the name/residue-lookup contact engine. The zero value
//is ready to use. It keeps no state between calls, so one value can
//serve concurrent analyses.
type Heuristic struct{}

//classify returns the interaction type for a receptor/ligand atom pair
//at distance d, or "" if the pair is no contact. Rules are evaluated
//in fixed priority order and the first match wins, so a pair
//satisfying both the salt-bridge and the hydrogen-bond criteria is a
//salt bridge, always.
func classify(rres *ligand.Residue, rat *ligand.Atom, lres *ligand.Residue, lat *ligand.Atom, d float64) string {
	if d <= SaltBridgeCutoff && ligand.Charged(rres, rat) && ligand.Charged(lres, lat) {
		return SaltBridge
	}
	if d <= HydrogenBondCutoff && ligand.DonorAcceptor(rat) && ligand.DonorAcceptor(lat) {
		return HydrogenBond
	}
	if d <= AromaticCutoff && aromaticPartner(rres, rat) && aromaticPartner(lres, lat) {
		return Aromatic
	}
	if d <= HydrophobicCutoff && ligand.Nonpolar(rat) && ligand.Nonpolar(lat) {
		return Hydrophobic
	}
	if d <= CloseCutoff {
		return Close
	}
	return ""
}

//aromaticPartner decides whether an atom can take part in an aromatic
//contact. For polymer residues that is a residue lookup. HETATM
//residues have no ring dictionary, so their carbons are accepted as
//ring candidates; the 5 A cutoff bounds the damage of a wrong guess.
func aromaticPartner(res *ligand.Residue, at *ligand.Atom) bool {
	if res.Kind == ligand.Polymer {
		return ligand.IsAromatic(res.Name)
	}
	return at.Element == "C"
}

//Detect enumerates every receptor-ligand heavy-atom pair within the
//relevant cutoff and classifies it. One Interaction per pair at most.
//Output is sorted by ascending distance, with ties broken by receptor
//then ligand file order, so truncating to the first N entries is
//deterministic. The pair scan is O(receptor x ligand), which is fine
//at the one-complex scale this library works on.
func (H *Heuristic) Detect(sel *ligand.Selection) ([]*Interaction, error) {
	if sel == nil {
		return nil, fmt.Errorf("contact: nil selection")
	}
	var inters []*Interaction
	for _, rres := range sel.Receptor {
		for _, rat := range rres.Atoms {
			if rat.IsHydrogen() {
				continue
			}
			for _, lres := range sel.Ligand {
				for _, lat := range lres.Atoms {
					if lat.IsHydrogen() {
						continue
					}
					d := ligand.Distance(rat, lat)
					if d > MaxCutoff {
						continue
					}
					t := classify(rres, rat, lres, lat, d)
					if t == "" {
						continue
					}
					inters = append(inters, &Interaction{
						Type:            t,
						ReceptorChain:   rres.ChainID,
						ReceptorResname: rres.Name,
						ReceptorResseq:  rres.SeqNum,
						ReceptorAtom:    rat.Name,
						LigandChain:     lres.ChainID,
						LigandResname:   lres.Name,
						LigandResseq:    lres.SeqNum,
						LigandAtom:      lat.Name,
						Distance:        d,
						recIndex:        rat.Index(),
						ligIndex:        lat.Index(),
					})
				}
			}
		}
	}
	sort.SliceStable(inters, func(i, j int) bool {
		a, b := inters[i], inters[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.recIndex != b.recIndex {
			return a.recIndex < b.recIndex
		}
		return a.ligIndex < b.ligIndex
	})
	return inters, nil
}

//SortByDistance sorts interactions by ascending distance, breaking
//ties by receptor chain, residue number and atom name. It is the
//ordering used for delegate output, where file-order atom indexes are
//not available.
func SortByDistance(inters []*Interaction) {
	sort.SliceStable(inters, func(i, j int) bool {
		a, b := inters[i], inters[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.ReceptorChain != b.ReceptorChain {
			return a.ReceptorChain < b.ReceptorChain
		}
		if a.ReceptorResseq != b.ReceptorResseq {
			return a.ReceptorResseq < b.ReceptorResseq
		}
		return a.ReceptorAtom < b.ReceptorAtom
	})
}
