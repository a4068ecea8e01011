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

package analyze

import "fmt"

//EngineUnavailableError means the chemistry engine was requested
//explicitly but its delegate cannot run. It only ever surfaces for the
//explicit request; the auto engine turns the same condition into a
//warning and a heuristic result. It implements ligand.Error.
type EngineUnavailableError struct {
	detail string
	deco   []string
}

func (err *EngineUnavailableError) Error() string {
	return fmt.Sprintf("chemistry engine requested but unusable: %s", err.detail)
}

//Decorate adds new information to the error.
func (err *EngineUnavailableError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
