/*
 * options.go, part of goligand.
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

package analyze

import (
	"go.uber.org/zap"

	ligand "github.com/rmera/goligand"
	"github.com/rmera/goligand/contact"
)

//The engine tags a caller can request.
const (
	EngineAuto      = "auto"
	EngineHeuristic = "heuristic"
	EngineChemistry = "chemistry"
)

//Options contains the options for one analysis. The zero value is not
//useful; start from DefaultOptions. Each setter follows the library
//convention: it returns the current value, and sets a new one if
//given.
type Options struct {
	mode     ligand.Mode
	resname  string
	chain    string
	engine   string
	delegate contact.Delegate
	topN     int
	logger   *zap.Logger
}

//DefaultOptions returns options for an automatic analysis: ligand
//mode derived from resname/chain (Auto if neither is set), auto engine
//selection, no delegate, no truncation and a no-op logger.
func DefaultOptions() *Options {
	o := new(Options)
	o.engine = EngineAuto
	o.logger = zap.NewNop()
	return o
}

//Mode returns the ligand selection mode and sets it, if given. When
//never set, the mode is derived from resname/chain: a chain without a
//resname means ByChain, a resname means ByResname, neither means Auto.
func (O *Options) Mode(mode ...ligand.Mode) ligand.Mode {
	if len(mode) > 0 {
		O.mode = mode[0]
	}
	if O.mode != "" {
		return O.mode
	}
	if O.chain != "" && O.resname == "" {
		return ligand.ByChain
	}
	if O.resname != "" {
		return ligand.ByResname
	}
	return ligand.Auto
}

//Resname returns the ligand residue name and sets it, if given.
func (O *Options) Resname(resname ...string) string {
	if len(resname) > 0 {
		O.resname = resname[0]
	}
	return O.resname
}

//Chain returns the ligand chain id and sets it, if given.
func (O *Options) Chain(chain ...string) string {
	if len(chain) > 0 {
		O.chain = chain[0]
	}
	return O.chain
}

//Engine returns the requested engine tag and sets it, if a valid one
//is given.
func (O *Options) Engine(engine ...string) string {
	if len(engine) > 0 {
		switch engine[0] {
		case EngineAuto, EngineHeuristic, EngineChemistry:
			O.engine = engine[0]
		}
	}
	return O.engine
}

//Delegate returns the chemistry delegate and sets it, if given. A nil
//delegate is simply "not available"; for the auto engine that is a
//warning, for the chemistry engine an error.
func (O *Options) Delegate(delegate ...contact.Delegate) contact.Delegate {
	if len(delegate) > 0 {
		O.delegate = delegate[0]
	}
	return O.delegate
}

//TopN returns the interaction-list truncation limit (0 keeps
//everything) and sets it, if a valid value is given. Truncation is
//deterministic because the list ordering is.
func (O *Options) TopN(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.topN = n[0]
	}
	return O.topN
}

//Logger returns the logger and sets it, if given. The default is a
//no-op logger; analyses themselves never require logging to work.
func (O *Options) Logger(logger ...*zap.Logger) *zap.Logger {
	if len(logger) > 0 && logger[0] != nil {
		O.logger = logger[0]
	}
	return O.logger
}
