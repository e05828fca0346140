package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every interface declaration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, decl := range s.declarations {
				if _, err := s.builder.Build(decl, s.facts); err != nil {
					failed++
					fmt.Fprintf(out, "  %-20s FAIL  %v\n", decl.Title, err)
					continue
				}
				fmt.Fprintf(out, "  %-20s ok\n", decl.Title)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d declarations are invalid", failed, len(s.declarations))
			}
			fmt.Fprintf(out, "%d declarations valid\n", len(s.declarations))
			return nil
		},
	}
}
