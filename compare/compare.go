/*
 * compare.go, part of goligand.
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

//Package compare matches the contact sets of two analyses through
//structure-independent contact signatures. Two contacts are "the same"
//when they have the same type and hit the same receptor residue; atom
//names and distances never take part, so a bond at 2.9 A in one
//complex and 3.1 A in the other still counts as shared.
package compare

import (
	"fmt"
	"sort"

	"github.com/rmera/goligand/contact"
)

//Signature is the structure-independent identity of a contact.
type Signature struct {
	Type            string `json:"interaction_type"`
	ReceptorChain   string `json:"receptor_chain"`
	ReceptorResseq  int    `json:"receptor_resseq"`
	ReceptorResname string `json:"receptor_resname"`
}

//For derives the signature of an interaction.
func For(in *contact.Interaction) Signature {
	return Signature{
		Type:            in.Type,
		ReceptorChain:   in.ReceptorChain,
		ReceptorResseq:  in.ReceptorResseq,
		ReceptorResname: in.ReceptorResname,
	}
}

//Key returns the flat string form of the signature, used to key the
//per-side example maps.
func (S Signature) Key() string {
	return fmt.Sprintf("%s|%s|%d|%s", S.Type, S.ReceptorChain, S.ReceptorResseq, S.ReceptorResname)
}

//Result holds the outcome of comparing 2 interaction lists. Shared,
//OnlyA and OnlyB are sorted. ExampleA/ExampleB carry, for every
//signature present on that side, one representative full interaction
//(the first of the side's ascending-distance order, i.e. the closest
//one) so a viewer can highlight actual atoms.
type Result struct {
	Shared   []Signature                     `json:"shared"`
	OnlyA    []Signature                     `json:"only_in_a"`
	OnlyB    []Signature                     `json:"only_in_b"`
	ExampleA map[string]*contact.Interaction `json:"example_interactions_a"`
	ExampleB map[string]*contact.Interaction `json:"example_interactions_b"`
}

//sortSignatures orders signatures by type, chain, residue number and
//residue name, which keeps compare output stable across runs.
func sortSignatures(sigs []Signature) {
	sort.Slice(sigs, func(i, j int) bool {
		a, b := sigs[i], sigs[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.ReceptorChain != b.ReceptorChain {
			return a.ReceptorChain < b.ReceptorChain
		}
		if a.ReceptorResseq != b.ReceptorResseq {
			return a.ReceptorResseq < b.ReceptorResseq
		}
		return a.ReceptorResname < b.ReceptorResname
	})
}

//examples keeps the first interaction per signature. The input lists
//come sorted by ascending distance from the engines, so "first" is
//also "closest".
func examples(inters []*contact.Interaction) map[string]*contact.Interaction {
	ret := make(map[string]*contact.Interaction)
	for _, in := range inters {
		k := For(in).Key()
		if _, ok := ret[k]; !ok {
			ret[k] = in
		}
	}
	return ret
}

//Patterns compares 2 interaction lists as pure set operations over
//their signatures. It is symmetric: Patterns(a,b).Shared equals
//Patterns(b,a).Shared, and OnlyA/OnlyB swap.
func Patterns(a, b []*contact.Interaction) *Result {
	setA := make(map[Signature]bool)
	for _, in := range a {
		setA[For(in)] = true
	}
	setB := make(map[Signature]bool)
	for _, in := range b {
		setB[For(in)] = true
	}
	res := &Result{
		Shared:   []Signature{},
		OnlyA:    []Signature{},
		OnlyB:    []Signature{},
		ExampleA: examples(a),
		ExampleB: examples(b),
	}
	for sig := range setA {
		if setB[sig] {
			res.Shared = append(res.Shared, sig)
		} else {
			res.OnlyA = append(res.OnlyA, sig)
		}
	}
	for sig := range setB {
		if !setA[sig] {
			res.OnlyB = append(res.OnlyB, sig)
		}
	}
	sortSignatures(res.Shared)
	sortSignatures(res.OnlyA)
	sortSignatures(res.OnlyB)
	return res
}
