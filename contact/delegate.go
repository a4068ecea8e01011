/*
 * delegate.go, part of goligand.
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

package contact

//The richer interaction vocabulary a chemistry-aware delegate may
//produce, in addition to Hydrophobic. The heuristic engine never emits
//these.
const (
	DelegateHydrogenBond = "hydrogen_bond"
	DelegateSaltBridge   = "salt_bridge"
	PiStacking           = "pi_stacking"
	CationPi             = "cation_pi"
	HalogenBond          = "halogen_bond"
	MetalComplex         = "metal_complex"
	WaterBridge          = "water_bridge"
)

//Delegate is an external chemistry-aware contact classifier, wrapped
//to produce the same Interaction records as the heuristic engine.
//Availability is a runtime condition, not a given: a delegate is
//injected per call and queried before use, never kept as ambient
//global state. Implementations must either be safe for concurrent
//invocation or say so, in which case the orchestrator serializes them.
type Delegate interface {
	Engine
	//Name identifies the delegate in reports and warnings.
	Name() string
	//Available reports whether the delegate can run right now (its
	//backing tool/installation is present and usable).
	Available() bool
}
