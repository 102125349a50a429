package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// hatchConfig holds flags for the hatch command.
type hatchConfig struct {
	kind  string
	force bool
}

// newHatchCmd creates the "digip hatch" subcommand.
func newHatchCmd() *cobra.Command {
	var cfg hatchConfig

	cmd := &cobra.Command{
		Use:   "hatch [name]",
		Short: "Hatch a new companion",
		Long:  "Creates a new companion and saves it.\nRefuses to replace an existing companion unless --force is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			kind := pet.Kind(strings.ToLower(cfg.kind))
			if !pet.Known(kind) {
				return fmt.Errorf("unknown kind %q (choose from: %s)", cfg.kind, kindList())
			}

			if _, err := os.Stat(a.st.PetPath()); err == nil && !cfg.force {
				return fmt.Errorf("a companion already exists; use --force to replace it")
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			p := pet.New(name, kind)
			if err := a.st.SavePet(p); err != nil {
				return err
			}
			if err := a.logEvent(cmd.Context(), eventlog.TypeHatch, p.Name, p.History[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s the %s! Take good care of them!\n",
				p.Name, pet.DisplayName(p.Kind))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.kind, "kind", "k", "crunch", "companion kind: "+kindList())
	cmd.Flags().BoolVar(&cfg.force, "force", false, "replace an existing companion")

	return cmd
}

// kindList returns the catalog kinds as a comma-separated string.
func kindList() string {
	kinds := pet.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
