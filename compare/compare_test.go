/*
 * compare_test.go, part of goligand.
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

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/goligand/contact"
)

func interaction(typ, chain, resname string, resseq int, atom string, d float64) *contact.Interaction {
	return &contact.Interaction{
		Type:            typ,
		ReceptorChain:   chain,
		ReceptorResname: resname,
		ReceptorResseq:  resseq,
		ReceptorAtom:    atom,
		LigandResname:   "LIG",
		LigandAtom:      "C1",
		Distance:        d,
	}
}

func TestPatterns(t *testing.T) {
	a := []*contact.Interaction{
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD1", 3.0),
		interaction(contact.HydrogenBond, "A", "SER", 11, "OG", 3.2),
		interaction(contact.Aromatic, "A", "PHE", 12, "CD1", 4.8),
	}
	b := []*contact.Interaction{
		//same salt bridge, through another atom and at another distance:
		//still the same signature
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD2", 3.4),
		interaction(contact.HydrogenBond, "A", "GLY", 14, "N", 3.3),
	}
	res := Patterns(a, b)
	require.Len(t, res.Shared, 1)
	assert.Equal(t, contact.SaltBridge, res.Shared[0].Type)
	assert.Equal(t, 10, res.Shared[0].ReceptorResseq)
	require.Len(t, res.OnlyA, 2)
	require.Len(t, res.OnlyB, 1)
	assert.Equal(t, "GLY", res.OnlyB[0].ReceptorResname)
}

func TestPatternsSymmetry(t *testing.T) {
	a := []*contact.Interaction{
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD1", 3.0),
		interaction(contact.Hydrophobic, "A", "ALA", 13, "CB", 4.2),
	}
	b := []*contact.Interaction{
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD2", 3.4),
		interaction(contact.HydrogenBond, "A", "GLY", 14, "N", 3.3),
	}
	ab := Patterns(a, b)
	ba := Patterns(b, a)
	assert.Equal(t, ab.Shared, ba.Shared)
	assert.Equal(t, ab.OnlyA, ba.OnlyB)
	assert.Equal(t, ab.OnlyB, ba.OnlyA)
	//one shared contact and one unique on each side
	assert.Len(t, ab.Shared, 1)
	assert.Len(t, ab.OnlyA, 1)
	assert.Len(t, ab.OnlyB, 1)
}

func TestPatternsEmpty(t *testing.T) {
	res := Patterns(nil, nil)
	assert.Empty(t, res.Shared)
	assert.Empty(t, res.OnlyA)
	assert.Empty(t, res.OnlyB)
	//empty, but never nil: the JSON output shows [] rather than null
	assert.NotNil(t, res.Shared)
	assert.NotNil(t, res.OnlyA)
	assert.NotNil(t, res.OnlyB)
}

func TestExamplesKeepClosest(t *testing.T) {
	//two interactions with the same signature; engine output is sorted
	//by ascending distance, so the representative must be the first
	a := []*contact.Interaction{
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD1", 3.0),
		interaction(contact.SaltBridge, "A", "ASP", 10, "OD2", 3.6),
	}
	res := Patterns(a, nil)
	key := For(a[0]).Key()
	require.Contains(t, res.ExampleA, key)
	assert.Equal(t, "OD1", res.ExampleA[key].ReceptorAtom)
	assert.InDelta(t, 3.0, res.ExampleA[key].Distance, 1e-9)
	//one signature, even though there were two interactions
	assert.Len(t, res.OnlyA, 1)
}

func TestSignatureKey(t *testing.T) {
	sig := Signature{Type: contact.HydrogenBond, ReceptorChain: "A", ReceptorResseq: 11, ReceptorResname: "SER"}
	assert.Equal(t, "hydrogen_bond_like|A|11|SER", sig.Key())
}
