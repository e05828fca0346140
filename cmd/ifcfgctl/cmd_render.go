package main

import (
	"fmt"
	"path/filepath"

	"ifcfg-agent/internal/domain/services"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "render <interface>",
		Short: "Print the ifcfg file for one interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			model, err := s.model(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showPath {
				dir, err := s.scriptsDir()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "# %s\n", filepath.Join(dir, model.ConfigFileName()))
			}
			_, err = out.Write(services.NewIfcfgRenderer().RenderText(model))
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "show-path", false, "Print the target path before the file content")
	return cmd
}
