package main

import (
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/infrastructure/adapters"
	"ifcfg-agent/internal/infrastructure/facts"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newFactsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Print facts discovered on this host as a facts file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

			collected, err := facts.NewNetlinkFactProvider(logger).Collect()
			if err != nil {
				return err
			}

			detector := adapters.NewRealOSDetector(adapters.NewRealFileSystem(), opts.hostRoot)
			if family, ok := facts.NewOSFamilyFactProvider(detector, logger).Fact(interfaces.FactOSFamily); ok {
				collected[interfaces.FactOSFamily] = family
			}

			// yaml.v3는 맵 키를 정렬해서 출력함
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(collected); err != nil {
				enc.Close()
				return err
			}
			return enc.Close()
		},
	}
}
