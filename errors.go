/*
 * errors.go, part of goligand.
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

//This predates the "wrapping" error system of Go. As in goChem, errors
//travel up as concrete types implementing the Error interface, and
//callers add context with Decorate instead of wrapping.

//Error is the interface all errors of this library implement. The
//Decorate method adds and retrieves info from the error without
//changing its type. The decoration slice should contain the names of
//the functions in the calling stack plus, for each, any relevant
//information.
type Error interface {
	error
	Decorate(string) []string //If passed an empty string it just returns the current value.
}

//FormatError means the PDB text could not be parsed into a structure.
//It is fatal: no partial structure is ever returned with it.
type FormatError struct {
	message string
	line    int //1-based line number of the offending record, 0 if not line-specific.
	deco    []string
}

func (err *FormatError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("pdb format error in line %d: %s", err.line, err.message)
	}
	return fmt.Sprintf("pdb format error: %s", err.message)
}

//Decorate adds new information to the error.
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Line returns the line number of the offending record, or 0.
func (err *FormatError) Line() int { return err.line }

//SelectionError means the requested ligand could not be resolved in
//the structure. It is fatal for the analysis using the selection.
type SelectionError struct {
	mode    string
	resname string
	chain   string
	deco    []string
}

func (err *SelectionError) Error() string {
	s := fmt.Sprintf("ligand selection (mode %s) failed:", err.mode)
	if err.resname != "" {
		s += fmt.Sprintf(" no HETATM residue %s", err.resname)
		if err.chain != "" {
			s += fmt.Sprintf(" on chain %s", err.chain)
		}
		return s
	}
	if err.chain != "" {
		return s + fmt.Sprintf(" chain %s not present", err.chain)
	}
	return s + " no ligand-like HETATM residues found"
}

//Decorate adds new information to the error.
func (err *SelectionError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Mode returns the selection mode that failed.
func (err *SelectionError) Mode() string { return err.mode }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. Calling it on any other error
//type is a programming mistake, so it panics there.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
