package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/modelspec/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "versioned snapshots of generated types",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return viper.BindPFlag("snapshot.manifest", c.Flags().Lookup("manifest"))
		},
	}
	snapshotCmd.PersistentFlags().StringP("manifest", "m", "api/manifest.yaml", "manifest file tracking snapshots")

	var version string
	var recordCmd = &cobra.Command{
		Use:   "record MODEL [FIELD...]",
		Short: "generate a model into <output-directory>/<version> and record it",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			return bindOptionFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			res, err := snapshot.Record(optionsFromConfig(), viper.GetString("snapshot.manifest"), version, args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), res.File)
			return err
		},
	}
	recordCmd.Flags().StringVarP(&version, "version", "V", "", "snapshot version, ex: v1")
	addOptionFlags(recordCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := snapshot.List(viper.GetString("snapshot.manifest"))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "MODEL\tVERSION\tFILE\n")
			for _, s := range m.Snapshots {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Version, s.File)
			}
			return w.Flush()
		},
	}

	var diffCmd = &cobra.Command{
		Use:   "diff MODEL",
		Short: "diff the previous and current snapshot of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(viper.GetString("snapshot.manifest"), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.OutOrStdout(), diff)
			return err
		},
	}

	snapshotCmd.AddCommand(recordCmd, listCmd, diffCmd)
	return snapshotCmd
}
