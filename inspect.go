/*
 * inspect.go, part of goligand.
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

import "sort"

//ChainInfo summarizes one chain of a structure for entity inspection.
type ChainInfo struct {
	Chain           string `json:"chain"`
	ResidueCount    int    `json:"residue_count"`
	ProteinResidues int    `json:"protein_residues"`
	HetResidues     int    `json:"het_residues"`
	RoleHint        string `json:"role_hint"` //"protein_like" or "ligand_like"
}

//HetLigand is one candidate ligand found during inspection: a
//chain/resname pair and how many residue instances it has.
type HetLigand struct {
	Chain     string `json:"chain"`
	Resname   string `json:"resname"`
	Instances int    `json:"instances"`
}

//Inventory lists the entities of a structure, to help a caller decide
//on a ligand selection before running an analysis.
type Inventory struct {
	Chains     []ChainInfo `json:"chains"`
	HetLigands []HetLigand `json:"het_ligands"`
}

//Inspect builds the entity inventory of a structure. Waters are
//ignored everywhere. Chains with nothing but water are omitted.
func Inspect(s *Structure) *Inventory {
	inv := new(Inventory)
	hets := make(map[[2]string]int)
	for _, c := range s.Chains() {
		info := ChainInfo{Chain: c.ID}
		for _, r := range c.Residues {
			if r.Kind == Water {
				continue
			}
			info.ResidueCount++
			switch {
			case r.Kind == Polymer && IsProtein(r.Name):
				info.ProteinResidues++
			case r.Kind == Hetero:
				info.HetResidues++
				hets[[2]string{c.ID, r.Name}]++
			}
		}
		if info.ResidueCount == 0 {
			continue
		}
		info.RoleHint = "protein_like"
		if info.HetResidues > info.ProteinResidues {
			info.RoleHint = "ligand_like"
		}
		inv.Chains = append(inv.Chains, info)
	}
	sort.Slice(inv.Chains, func(i, j int) bool { return inv.Chains[i].Chain < inv.Chains[j].Chain })
	for k, n := range hets {
		inv.HetLigands = append(inv.HetLigands, HetLigand{Chain: k[0], Resname: k[1], Instances: n})
	}
	sort.Slice(inv.HetLigands, func(i, j int) bool {
		a, b := inv.HetLigands[i], inv.HetLigands[j]
		if a.Chain != b.Chain {
			return a.Chain < b.Chain
		}
		return a.Resname < b.Resname
	})
	return inv
}
