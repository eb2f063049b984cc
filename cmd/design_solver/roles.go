package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/types"
)

var (
	rolesMode  string
	rolesDepth string
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show which specialist roles a mode and depth select",
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().StringVarP(&rolesMode, "mode", "m", "idea", "Project mode: idea, mvp or scale")
	rolesCmd.Flags().StringVarP(&rolesDepth, "depth", "d", "standard", "Strategy depth: quick, standard or deep")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	mode, err := types.ParseMode(rolesMode)
	if err != nil {
		return err
	}
	depth, err := types.ParseDepth(rolesDepth)
	if err != nil {
		return err
	}

	resolved := roles.Resolve(mode, depth)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ROLE\tLABEL\tPRODUCES\n")
	for _, r := range resolved {
		def := roles.MustLookup(r)
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Role, def.Label, def.Type)
	}
	return w.Flush()
}
