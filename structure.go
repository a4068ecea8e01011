/*
 * structure.go, part of goligand.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//Atom contains one atom read from a PDB ATOM or HETATM record.
//Unlike goChem, coordinates live in the atom itself: the structures
//handled here are small (one complex) and atom-centric access is what
//contact enumeration needs.
type Atom struct {
	Serial  int     `json:"serial"`
	Name    string  `json:"name"`
	Element string  `json:"element"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Het     bool    `json:"het"` //came from a HETATM record
	index   int     //position in file order, set by the reader.
}

//Coords returns the cartesian coordinates of the atom, in A.
func (A *Atom) Coords() []float64 {
	return []float64{A.X, A.Y, A.Z}
}

//Index returns the file-order position of the atom in its structure.
//It is the tie-breaker that keeps contact ordering deterministic.
func (A *Atom) Index() int {
	return A.index
}

//IsHydrogen returns whether the atom is a hydrogen.
//Hydrogens never take part in distance classification.
func (A *Atom) IsHydrogen() bool {
	return A.Element == "H"
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	na := *A
	return &na
}

//Distance returns the Euclidean distance between 2 atoms, in A.
func Distance(a, b *Atom) float64 {
	return floats.Distance(a.Coords(), b.Coords(), 2)
}

//ResidueKind distinguishes the 3 kinds of residue relevant for
//ligand/receptor partitioning.
type ResidueKind int

const (
	Polymer ResidueKind = iota //standard polymer residue (ATOM records)
	Hetero                     //non-water HETATM residue
	Water
)

//Residue is one residue of a chain, with its atoms in file order.
type Residue struct {
	Name    string      `json:"resname"` //3-letter code
	SeqNum  int         `json:"resseq"`
	ICode   byte        `json:"-"` //insertion code, 0 if none
	ChainID string      `json:"chain"`
	Kind    ResidueKind `json:"-"`
	Atoms   []*Atom     `json:"-"`
}

//ID returns a chain:name:seq label for the residue, the same format
//used in analysis reports.
func (R *Residue) ID() string {
	return fmt.Sprintf("%s:%s:%d", R.ChainID, R.Name, R.SeqNum)
}

//CA returns the alpha carbon of the residue, or nil if it has none.
func (R *Residue) CA() *Atom {
	for _, at := range R.Atoms {
		if at.Name == "CA" && at.Element == "C" {
			return at
		}
	}
	return nil
}

//Copy returns a copy of the residue, with copied atoms.
func (R *Residue) Copy() *Residue {
	nr := *R
	nr.Atoms = make([]*Atom, 0, len(R.Atoms))
	for _, at := range R.Atoms {
		nr.Atoms = append(nr.Atoms, at.Copy())
	}
	return &nr
}

//Chain is one chain of a structure, with its residues in file order.
type Chain struct {
	ID       string     `json:"chain"`
	Residues []*Residue `json:"-"`
}

//Copy returns a copy of the chain, with copied residues and atoms.
func (C *Chain) Copy() *Chain {
	nc := &Chain{ID: C.ID, Residues: make([]*Residue, 0, len(C.Residues))}
	for _, r := range C.Residues {
		nc.Residues = append(nc.Residues, r.Copy())
	}
	return nc
}

//Structure is everything parsed from one PDB text blob: a set of chains
//in file order. Each atom belongs to exactly one residue, one chain and
//one structure. Structures are not modified after parsing; analyses that
//move atoms (superposition) work on a Copy.
type Structure struct {
	chains []*Chain
}

//Chains returns the chains of the structure, in file order.
func (S *Structure) Chains() []*Chain {
	return S.chains
}

//Chain returns the chain with the given id, or nil if absent.
func (S *Structure) Chain(id string) *Chain {
	for _, c := range S.chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

//Residues returns every residue of the structure, in file order.
func (S *Structure) Residues() []*Residue {
	var ret []*Residue
	for _, c := range S.chains {
		ret = append(ret, c.Residues...)
	}
	return ret
}

//Atoms returns every atom of the structure, in file order.
func (S *Structure) Atoms() []*Atom {
	var ret []*Atom
	for _, r := range S.Residues() {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	n := 0
	for _, r := range S.Residues() {
		n += len(r.Atoms)
	}
	return n
}

//Copy returns a deep copy of the structure. The copy keeps the
//file-order indexes of the original atoms.
func (S *Structure) Copy() *Structure {
	ns := &Structure{chains: make([]*Chain, 0, len(S.chains))}
	for _, c := range S.chains {
		ns.chains = append(ns.chains, c.Copy())
	}
	return ns
}

//appendAtom adds an atom to the residue identified by the given
//chain/resname/resseq/icode, creating chain and residue as needed.
//Only the reader uses it; after parsing the structure is left alone.
func (S *Structure) appendAtom(at *Atom, chainID, resname string, resseq int, icode byte, kind ResidueKind) {
	c := S.Chain(chainID)
	if c == nil {
		c = &Chain{ID: chainID}
		S.chains = append(S.chains, c)
	}
	var res *Residue
	if len(c.Residues) > 0 {
		last := c.Residues[len(c.Residues)-1]
		if last.SeqNum == resseq && last.ICode == icode && last.Name == resname {
			res = last
		}
	}
	if res == nil {
		res = &Residue{Name: resname, SeqNum: resseq, ICode: icode, ChainID: chainID, Kind: kind}
		c.Residues = append(c.Residues, res)
	}
	res.Atoms = append(res.Atoms, at)
}
