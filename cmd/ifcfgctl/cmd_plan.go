package main

import (
	"path/filepath"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/services"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// planOutput은 plan 명령의 YAML 출력 형식입니다
type planOutput struct {
	Interface  string       `yaml:"interface"`
	Device     string       `yaml:"device"`
	VLAN       string       `yaml:"vlan,omitempty"`
	ConfigPath string       `yaml:"config_path"`
	Actions    []actionView `yaml:"actions"`
}

type actionView struct {
	ID       string   `yaml:"id"`
	Kind     string   `yaml:"kind"`
	Command  []string `yaml:"command,flow"`
	Before   []string `yaml:"before,omitempty,flow"`
	Requires []string `yaml:"requires,omitempty,flow"`
}

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <interface>",
		Short: "Print the actions that follow writing the ifcfg file",
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

			dir, err := s.scriptsDir()
			if err != nil {
				return err
			}
			configPath := filepath.Join(dir, model.ConfigFileName())
			actions := services.NewActionPlanner().Plan(model, configPath)
			if err := entities.ValidateOrdering(actions); err != nil {
				return err
			}

			view := planOutput{Interface: model.Name, Device: model.Device, ConfigPath: configPath}
			if tag, ok := services.VLANTag(model.Name); ok {
				view.VLAN = tag
			}
			for _, a := range actions {
				view.Actions = append(view.Actions, actionView{
					ID:       a.ID,
					Kind:     string(a.Kind),
					Command:  a.Command,
					Before:   a.Before,
					Requires: a.Requires,
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				enc.Close()
				return err
			}
			return enc.Close()
		},
	}
}
