/*
 * analyze.go, part of goligand.
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

//Package analyze composes the parsing, selection, contact-detection,
//comparison and superposition pieces of goLigand into whole-complex
//analyses. It is the one place that decides which contact engine runs.
package analyze

import (
	"go.uber.org/zap"

	ligand "github.com/rmera/goligand"
	"github.com/rmera/goligand/compare"
	"github.com/rmera/goligand/contact"
	"github.com/rmera/goligand/super"
)

//LigandInfo describes the resolved ligand of an analysis.
type LigandInfo struct {
	Name     string   `json:"name"`
	Chain    string   `json:"chain,omitempty"`
	Residues []string `json:"residues"`
}

//Report is the result of analyzing one complex.
type Report struct {
	Ligand           LigandInfo             `json:"ligand"`
	InteractionCount int                    `json:"interaction_count"`
	Interactions     []*contact.Interaction `json:"interactions"`
	EngineUsed       string                 `json:"engine_used"`
	Warnings         []string               `json:"warnings"`
}

//Comparison is the result of comparing two complexes.
type Comparison struct {
	A          *Report         `json:"complex_a"`
	B          *Report         `json:"complex_b"`
	Patterns   *compare.Result `json:"patterns"`
	Alignment  *super.Result   `json:"alignment,omitempty"`
	AlignedPDB string          `json:"aligned_pdb,omitempty"` //moving structure, in the reference frame
	Warnings   []string        `json:"warnings"`
}

//delegateOutcome is the typed result of one attempt to run the
//chemistry delegate. Keeping the attempt an explicit two-step
//(try, then decide) rather than error-driven branching is what makes
//the fallback warnings testable on their own.
type delegateOutcome int

const (
	delegateRan delegateOutcome = iota
	delegateUnavailable
	delegateIncompatible
)

//tryDelegate attempts to run the chemistry delegate on a selection.
//It never fails: the outcome and its detail say what happened.
func tryDelegate(d contact.Delegate, sel *ligand.Selection) ([]*contact.Interaction, delegateOutcome, string) {
	if sel.Mode == ligand.ByChain {
		return nil, delegateIncompatible, "chain-as-ligand selection is not small-molecule compatible"
	}
	if d == nil {
		return nil, delegateUnavailable, "no chemistry delegate injected"
	}
	if !d.Available() {
		return nil, delegateUnavailable, d.Name() + " is not available"
	}
	inters, err := d.Detect(sel)
	if err != nil {
		return nil, delegateUnavailable, d.Name() + " failed: " + err.Error()
	}
	contact.SortByDistance(inters)
	return inters, delegateRan, ""
}

//runEngine applies the engine-selection policy: heuristic always runs
//the heuristic engine; chemistry runs the delegate or fails with
//*EngineUnavailableError, never falling back; auto tries the delegate
//when the selection allows it and otherwise degrades to the heuristic
//engine with a warning instead of failing.
func runEngine(sel *ligand.Selection, o *Options) ([]*contact.Interaction, string, []string, error) {
	warnings := []string{}
	heuristic := func() ([]*contact.Interaction, string, []string, error) {
		inters, err := new(contact.Heuristic).Detect(sel)
		return inters, EngineHeuristic, warnings, err
	}
	switch o.Engine() {
	case EngineHeuristic:
		return heuristic()
	case EngineChemistry:
		inters, outcome, detail := tryDelegate(o.Delegate(), sel)
		if outcome != delegateRan {
			return nil, "", nil, &EngineUnavailableError{detail: detail}
		}
		return inters, o.Delegate().Name(), warnings, nil
	default: //EngineAuto
		inters, outcome, detail := tryDelegate(o.Delegate(), sel)
		if outcome == delegateRan {
			return inters, o.Delegate().Name(), warnings, nil
		}
		warnings = append(warnings, "auto engine fell back to heuristic: "+detail)
		o.Logger().Debug("engine fallback", zap.String("reason", detail))
		return heuristic()
	}
}

//analyzeStructure runs ligand resolution and contact detection on an
//already-parsed structure.
func analyzeStructure(s *ligand.Structure, o *Options) (*Report, error) {
	sel, err := ligand.Resolve(s, o.Mode(), o.Resname(), o.Chain())
	if err != nil {
		return nil, err
	}
	inters, engine, warnings, err := runEngine(sel, o)
	if err != nil {
		return nil, err
	}
	if n := o.TopN(); n > 0 && len(inters) > n {
		inters = inters[:n]
	}
	rep := &Report{
		Ligand: LigandInfo{
			Name:     sel.Resname,
			Chain:    sel.ChainID,
			Residues: sel.LigandResidueIDs(),
		},
		InteractionCount: len(inters),
		Interactions:     inters,
		EngineUsed:       engine,
		Warnings:         warnings,
	}
	return rep, nil
}

//Complex analyzes one receptor-ligand complex from raw PDB text:
//parse, resolve the ligand, run the selected contact engine. The
//returned error, if any, is one of the typed kinds of this library
//(format, selection, engine availability); there is never a partial
//report next to an error.
func Complex(text string, options ...*Options) (*Report, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	s, err := ligand.ParsePDB(text)
	if err != nil {
		return nil, err
	}
	return analyzeStructure(s, o)
}

//ComplexFile is Complex for a structure file on disk: PDB or mmCIF,
//possibly gzip or zstd compressed.
func ComplexFile(path string, options ...*Options) (*Report, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	s, err := ligand.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return analyzeStructure(s, o)
}

//pairOut carries one branch result of a compare call.
type pairOut struct {
	rep *Report
	err error
}

//Pair analyzes two complexes, compares their contact patterns, and,
//if align is true, superimposes the second structure onto the first
//for shared-frame visualization. The two contact detections and the
//superposition are independent and run in parallel. Alignment failure
//is not an error: it degrades to a warning and Alignment.Aligned
//false, and AlignedPDB then holds the moving structure unchanged.
func Pair(textA, textB string, optsA, optsB *Options, align bool) (*Comparison, error) {
	sA, err := ligand.ParsePDB(textA)
	if err != nil {
		return nil, errDecorateIf(err, "Pair: complex A")
	}
	sB, err := ligand.ParsePDB(textB)
	if err != nil {
		return nil, errDecorateIf(err, "Pair: complex B")
	}
	return pairStructures(sA, sB, optsA, optsB, align)
}

//PairFiles is Pair for structure files on disk: PDB or mmCIF,
//possibly gzip or zstd compressed.
func PairFiles(pathA, pathB string, optsA, optsB *Options, align bool) (*Comparison, error) {
	sA, err := ligand.ReadFile(pathA)
	if err != nil {
		return nil, errDecorateIf(err, "PairFiles: complex A")
	}
	sB, err := ligand.ReadFile(pathB)
	if err != nil {
		return nil, errDecorateIf(err, "PairFiles: complex B")
	}
	return pairStructures(sA, sB, optsA, optsB, align)
}

func pairStructures(sA, sB *ligand.Structure, optsA, optsB *Options, align bool) (*Comparison, error) {
	if optsA == nil {
		optsA = DefaultOptions()
	}
	if optsB == nil {
		optsB = DefaultOptions()
	}
	cha := make(chan pairOut, 1)
	chb := make(chan pairOut, 1)
	go func() {
		rep, err := analyzeStructure(sA, optsA)
		cha <- pairOut{rep, err}
	}()
	go func() {
		rep, err := analyzeStructure(sB, optsB)
		chb <- pairOut{rep, err}
	}()
	var alres *super.Result
	var moved *ligand.Structure
	chal := make(chan bool, 1)
	if align {
		go func() {
			//for peptide (chain-mode) ligands the chains to pair are
			//the ligand chains themselves; otherwise the best receptor
			//chain pair is found automatically.
			chainA, chainB := "", ""
			if optsA.Mode() == ligand.ByChain && optsB.Mode() == ligand.ByChain {
				chainA, chainB = optsA.Chain(), optsB.Chain()
			}
			alres, moved = super.Align(sA, sB, chainA, chainB)
			chal <- true
		}()
	}
	outA := <-cha
	outB := <-chb
	if align {
		<-chal
	}
	if outA.err != nil {
		return nil, errDecorateIf(outA.err, "Pair: complex A")
	}
	if outB.err != nil {
		return nil, errDecorateIf(outB.err, "Pair: complex B")
	}
	comp := &Comparison{
		A:        outA.rep,
		B:        outB.rep,
		Patterns: compare.Patterns(outA.rep.Interactions, outB.rep.Interactions),
		Warnings: []string{},
	}
	if align {
		comp.Alignment = alres
		if moved != nil {
			comp.AlignedPDB = ligand.WritePDB(moved)
		}
		if !alres.Aligned {
			comp.Warnings = append(comp.Warnings, "alignment skipped: "+alres.Reason)
			optsA.Logger().Debug("alignment skipped", zap.String("reason", alres.Reason))
		}
	}
	return comp, nil
}

//errDecorateIf decorates errors that implement ligand.Error and leaves
//any other alone.
func errDecorateIf(err error, caller string) error {
	if lerr, ok := err.(ligand.Error); ok {
		lerr.Decorate(caller)
		return lerr
	}
	return err
}
