/*
 * main.go, part of goligand.
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

//goligand analyzes receptor-ligand contacts in PDB structures:
//inspect lists the entities of a structure, analyze classifies the
//contacts of one complex and compare matches the contact patterns of
//two complexes, optionally superimposing them.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ligand "github.com/rmera/goligand"
	"github.com/rmera/goligand/analyze"
	"github.com/rmera/goligand/report"
)

var (
	flagVerbose bool

	flagResname string
	flagChain   string
	flagMode    string
	flagEngine  string
	flagTop     int
	flagPlot    string

	flagResname2 string
	flagChain2   string
	flagAlign    bool
	flagMovedOut string
)

func logger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

//printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

//options builds analysis options from a resname/chain flag pair plus
//the shared engine/mode/top flags.
func options(resname, chain string) *analyze.Options {
	o := analyze.DefaultOptions()
	o.Resname(resname)
	o.Chain(chain)
	o.Engine(flagEngine)
	o.TopN(flagTop)
	o.Logger(logger())
	if flagMode != "" {
		o.Mode(ligand.Mode(flagMode))
	}
	return o
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the chains and candidate ligands of a PDB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ligand.ReadFile(args[0])
			if err != nil {
				return err
			}
			return printJSON(ligand.Inspect(s))
		},
	}
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Detect and classify receptor-ligand contacts in a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := analyze.ComplexFile(args[0], options(flagResname, flagChain))
			if err != nil {
				return err
			}
			if flagPlot != "" {
				if err := report.DistanceHistogram(rep.Interactions, "Contact distances", flagPlot+"_distances", 0); err != nil {
					return err
				}
				if err := report.TypeCounts(rep.Interactions, "Contacts per type", flagPlot+"_types"); err != nil {
					return err
				}
			}
			return printJSON(rep)
		},
	}
	cmd.Flags().StringVar(&flagPlot, "plot", "", "basename for distance/type PNG plots (no plots if empty)")
	return cmd
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare the contact patterns of two complexes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			optsA := options(flagResname, flagChain)
			optsB := options(flagResname2, flagChain2)
			comp, err := analyze.PairFiles(args[0], args[1], optsA, optsB, flagAlign)
			if err != nil {
				return err
			}
			if flagMovedOut != "" && comp.AlignedPDB != "" {
				if err := os.WriteFile(flagMovedOut, []byte(comp.AlignedPDB), 0644); err != nil {
					return err
				}
				//the PDB goes to its own file, not into the JSON
				comp.AlignedPDB = ""
			}
			return printJSON(comp)
		},
	}
	cmd.Flags().StringVar(&flagResname2, "resname2", "", "ligand residue name in the second complex (defaults to --resname)")
	cmd.Flags().StringVar(&flagChain2, "chain2", "", "ligand chain in the second complex (defaults to --chain)")
	cmd.Flags().BoolVar(&flagAlign, "align", true, "superimpose the second structure onto the first")
	cmd.Flags().StringVar(&flagMovedOut, "aligned-out", "", "write the superimposed second structure as PDB to this file")
	return cmd
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goligand",
		Short:         "Receptor-ligand contact analysis for PDB structures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			//compare falls back to the first complex's selection
			//when no second one is given.
			if flagResname2 == "" {
				flagResname2 = flagResname
			}
			if flagChain2 == "" {
				flagChain2 = flagChain
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flagResname, "resname", "", "ligand residue name (HETATM selection)")
	pf.StringVar(&flagChain, "chain", "", "ligand chain id")
	pf.StringVar(&flagMode, "mode", "", "ligand selection mode: het, chain or auto (derived from the other flags if empty)")
	pf.StringVar(&flagEngine, "engine", analyze.EngineAuto, "contact engine: auto, heuristic or chemistry")
	pf.IntVar(&flagTop, "top", 0, "keep only the N closest interactions (0 keeps all)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log analysis details to stderr")
	root.AddCommand(inspectCmd(), analyzeCmd(), compareCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "goligand: %v\n", err)
		os.Exit(1)
	}
}
