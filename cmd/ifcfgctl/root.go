package main

import (
	"fmt"

	"ifcfg-agent/internal/domain/constants"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options는 모든 하위 명령이 공유하는 플래그입니다
type options struct {
	declarationsFile string
	factsFile        string
	discover         bool
	scriptsDir       string
	hostRoot         string
	verbose          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ifcfgctl",
		Short: "Validate and preview RHEL ifcfg interface files",
		Long: `Ifcfgctl reads the same declaration file as the ifcfg agent and shows
what the agent would write, without writing files or running commands.

  ifcfgctl validate                  # check every declaration
  ifcfgctl render eth6.203           # print the ifcfg file for one interface
  ifcfgctl plan eth6.203             # print the post-write actions
  ifcfgctl facts                     # print facts discovered on this host`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.declarationsFile, "declarations", "d", constants.DefaultDeclarationsFile, "Interface declaration YAML file")
	flags.StringVarP(&opts.factsFile, "facts", "f", "", "Static facts YAML file")
	flags.BoolVar(&opts.discover, "discover", false, "Discover facts from this host (netlink, os-release)")
	flags.StringVar(&opts.scriptsDir, "scripts-dir", "", "Directory the ifcfg files would be written to (default: from the osfamily fact)")
	flags.StringVar(&opts.hostRoot, "host-root", "", "Root directory of the host filesystem")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newValidateCmd(opts),
		newRenderCmd(opts),
		newPlanCmd(opts),
		newFactsCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ifcfgctl %s\n", version)
			},
		},
	)

	return rootCmd
}

func (o *options) logger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
