/*
 * super.go, part of goligand.
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

//Package super superimposes one structure onto another with the Kabsch
//algorithm over shared C-alpha atoms. Superposition here is a
//visualization aid: it fails closed (Aligned=false plus a reason),
//never with an error, and it never touches the structures it is given.
package super

import (
	"fmt"
	"math"
	"sort"

	ligand "github.com/rmera/goligand"
	"gonum.org/v1/gonum/mat"
)

//MinSharedCA is the smallest number of shared C-alpha atoms a rigid
//superposition can be computed from.
const MinSharedCA = 3

//ReasonTooFewCA is the Result.Reason used when the chain pair shares
//fewer than MinSharedCA C-alpha atoms.
const ReasonTooFewCA = "insufficient shared backbone atoms"

//Result reports whether and how well a superposition worked.
type Result struct {
	Aligned        bool    `json:"aligned"`
	Reason         string  `json:"reason,omitempty"`
	ReferenceChain string  `json:"reference_chain,omitempty"`
	MovingChain    string  `json:"moving_chain,omitempty"`
	SharedCA       int     `json:"shared_ca_atom_count"`
	RMSD           float64 `json:"rmsd"` //A, over the shared C-alpha set, after alignment.
}

//caBySeq maps residue sequence numbers to the first C-alpha found for
//that number on the chain. Insertion-code duplicates beyond the first
//are ignored; they would make the "same residue number" pairing
//ambiguous.
func caBySeq(c *ligand.Chain) map[int]*ligand.Atom {
	ret := make(map[int]*ligand.Atom)
	for _, r := range c.Residues {
		if r.Kind != ligand.Polymer {
			continue
		}
		if _, ok := ret[r.SeqNum]; ok {
			continue
		}
		if ca := r.CA(); ca != nil {
			ret[r.SeqNum] = ca
		}
	}
	return ret
}

//sharedCAs returns the paired C-alpha atoms of 2 chains, matched by
//residue sequence number, in ascending sequence order.
func sharedCAs(refc, movc *ligand.Chain) (refCA, movCA []*ligand.Atom) {
	rmap := caBySeq(refc)
	mmap := caBySeq(movc)
	seqs := make([]int, 0, len(rmap))
	for seq := range rmap {
		if _, ok := mmap[seq]; ok {
			seqs = append(seqs, seq)
		}
	}
	//sorted so the pairing (and thus the fit) is deterministic
	sort.Ints(seqs)
	for _, seq := range seqs {
		refCA = append(refCA, rmap[seq])
		movCA = append(movCA, mmap[seq])
	}
	return refCA, movCA
}

//pairChains picks the chain pair to superimpose on. Explicit ids win;
//otherwise every pair is scored by its shared C-alpha count and the
//best one (first, on ties) is taken.
func pairChains(ref, mov *ligand.Structure, chainRef, chainMov string) (refc, movc *ligand.Chain, reason string) {
	var refCands, movCands []*ligand.Chain
	if chainRef != "" {
		c := ref.Chain(chainRef)
		if c == nil {
			return nil, nil, fmt.Sprintf("reference chain %s not found", chainRef)
		}
		refCands = []*ligand.Chain{c}
	} else {
		refCands = ref.Chains()
	}
	if chainMov != "" {
		c := mov.Chain(chainMov)
		if c == nil {
			return nil, nil, fmt.Sprintf("moving chain %s not found", chainMov)
		}
		movCands = []*ligand.Chain{c}
	} else {
		movCands = mov.Chains()
	}
	best := -1
	for _, rc := range refCands {
		for _, mc := range movCands {
			refCA, _ := sharedCAs(rc, mc)
			if len(refCA) > best {
				best = len(refCA)
				refc, movc = rc, mc
			}
		}
	}
	if refc == nil {
		return nil, nil, "no chains to pair"
	}
	return refc, movc, ""
}

//centroid returns the mean position of the given atoms.
func centroid(atoms []*ligand.Atom) [3]float64 {
	var c [3]float64
	for _, at := range atoms {
		c[0] += at.X
		c[1] += at.Y
		c[2] += at.Z
	}
	n := float64(len(atoms))
	c[0] /= n
	c[1] /= n
	c[2] /= n
	return c
}

//kabsch computes the optimal rotation taking the centered mov points
//onto the centered ref points. Points go in as rows. The returned 3x3
//matrix rotates column vectors. The usual determinant-sign correction
//turns a reflection, when the SVD hands one back, into a proper
//rotation instead of failing.
func kabsch(refCA, movCA []*ligand.Atom, cref, cmov [3]float64) (*mat.Dense, error) {
	n := len(refCA)
	P := mat.NewDense(n, 3, nil) //centered moving points
	Q := mat.NewDense(n, 3, nil) //centered reference points
	for i := 0; i < n; i++ {
		P.Set(i, 0, movCA[i].X-cmov[0])
		P.Set(i, 1, movCA[i].Y-cmov[1])
		P.Set(i, 2, movCA[i].Z-cmov[2])
		Q.Set(i, 0, refCA[i].X-cref[0])
		Q.Set(i, 1, refCA[i].Y-cref[1])
		Q.Set(i, 2, refCA[i].Z-cref[2])
	}
	var h mat.Dense
	h.Mul(P.T(), Q)
	var svd mat.SVD
	if ok := svd.Factorize(&h, mat.SVDFull); !ok {
		return nil, fmt.Errorf("SVD of the covariance matrix failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var r mat.Dense
	r.Mul(&v, u.T())
	if mat.Det(&r) < 0 {
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		r.Mul(&v, u.T())
	}
	return &r, nil
}

//transform applies p' = R(p - cmov) + cref to every atom of s, in
//place. s is always a private copy by the time this runs.
func transform(s *ligand.Structure, r *mat.Dense, cmov, cref [3]float64) {
	for _, at := range s.Atoms() {
		x := at.X - cmov[0]
		y := at.Y - cmov[1]
		z := at.Z - cmov[2]
		at.X = r.At(0, 0)*x + r.At(0, 1)*y + r.At(0, 2)*z + cref[0]
		at.Y = r.At(1, 0)*x + r.At(1, 1)*y + r.At(1, 2)*z + cref[1]
		at.Z = r.At(2, 0)*x + r.At(2, 1)*y + r.At(2, 2)*z + cref[2]
	}
}

//rmsd returns the root mean square deviation between 2 paired atom
//sets of equal length.
func rmsd(a, b []*ligand.Atom) float64 {
	var sum float64
	for i := range a {
		d := ligand.Distance(a[i], b[i])
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}

//Align superimposes a copy of mov onto ref using the Kabsch algorithm
//over shared C-alpha atoms, and returns the fit report together with
//the transformed copy. Chain ids are optional; when empty the best
//pair is chosen per pairChains. If the superposition cannot be
//computed the Result says so and the returned structure is an
//untransformed copy of mov, so callers can always emit it. Neither
//input structure is ever modified.
func Align(ref, mov *ligand.Structure, chainRef, chainMov string) (*Result, *ligand.Structure) {
	if ref == nil || mov == nil {
		return &Result{Aligned: false, Reason: "nil structure"}, nil
	}
	out := mov.Copy()
	refc, movc, reason := pairChains(ref, mov, chainRef, chainMov)
	if reason != "" {
		return &Result{Aligned: false, Reason: reason}, out
	}
	res := &Result{ReferenceChain: refc.ID, MovingChain: movc.ID}
	refCA, movCA := sharedCAs(refc, movc)
	res.SharedCA = len(refCA)
	if res.SharedCA < MinSharedCA {
		res.Reason = ReasonTooFewCA
		return res, out
	}
	cref := centroid(refCA)
	cmov := centroid(movCA)
	r, err := kabsch(refCA, movCA, cref, cmov)
	if err != nil {
		res.Reason = err.Error()
		return res, out
	}
	transform(out, r, cmov, cref)
	//re-pair on the transformed copy to measure the fit
	_, outCA := sharedCAs(refc, out.Chain(movc.ID))
	res.RMSD = rmsd(refCA, outCA)
	res.Aligned = true
	return res, out
}
