/*
 * doc.go, part of goligand.
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

/*Package ligand is the main package of the goLigand library. It provides chain/residue/atom
structures for one receptor-ligand complex read from a PDB file, the PDB reader and writer,
the chemical classification tables for atoms and residues, and the partition of a structure
into ligand and receptor atom sets.


	**goLigand capabilities**


    Reads/writes PDB files, and reads mmCIF ones, including gzip and zstd
	compressed files.

    Partitions a complex into ligand and receptor by HETATM residue name,
	by chain, or automatically (largest non-water HETATM residue).

    Enumerates and classifies non-covalent receptor-ligand contacts with a
	name/residue-based heuristic classifier, or with an external
	chemistry-aware delegate behind the same contract (package contact).

    Compares the contact patterns of two complexes through structure-independent
	contact signatures (package compare).

    Superimposes one complex onto another using the Kabsch algorithm over
	shared C-alpha atoms, and reports the RMSD of the fit (package super).

    Orchestrates full analyze-one/compare-two runs, including engine selection
	and graceful fallback (package analyze).

    Draws contact-distance histograms and per-type counts (uses the gonum
	plotting library, package report).

All structures are request-scoped and nothing here keeps global state, so concurrent
analyses of different complexes need no locking.
*/
package ligand
