package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/modelspec/pkg/parser"
)

func init() {
	rootCmd.AddCommand(NewParseCommand())
}

func NewParseCommand() *cobra.Command {
	var format string

	// parseCmd prints the descriptor of a model definition
	var parseCmd = &cobra.Command{
		Use:     "parse MODEL [FIELD...]",
		Short:   "print the model descriptor",
		Long:    "Parse a model name and its field lines and print the resulting model descriptor as JSON or YAML",
		Example: "modelspec parse User 'name:String!' 'age:Int:18' 'settings:{' 'sms:Boolean:true' '}'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := parser.Parse(args...)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(d, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(d)
			default:
				return fmt.Errorf("unknown format %q, want json or yaml", format)
			}
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(out)
			return err
		},
	}
	parseCmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")

	return parseCmd
}
