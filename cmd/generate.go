package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/modelspec/pkg/action/generate"
	"github.com/cmmoran/modelspec/pkg/parser"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

// addOptionFlags registers the generation flags. They are bound to the
// generate.* config keys in bindOptionFlags, once the command is known.
func addOptionFlags(c *cobra.Command) {
	c.Flags().StringP("output-directory", "o", "api", "directory to write generated types")
	c.Flags().StringP("output-file", "f", "", "output file, defaults to <model>_gen.go")
	c.Flags().StringP("package", "p", "", "package name, defaults to the output directory name")
	c.Flags().StringP("suffix", "s", "", "suffix to append to generated struct names")
	c.Flags().StringSliceP("exclude-fields", "x", []string{}, "field names or dotted paths to leave out, ex: settings.sms")
	c.Flags().StringSliceP("exclude-types", "t", []string{}, "referenced model names whose fields are left out")
	c.Flags().Bool("omit-bson-tags", false, "do not emit bson struct tags")
}

var optionKeys = map[string]string{
	"generate.out_dir":        "output-directory",
	"generate.out_file":       "output-file",
	"generate.package":        "package",
	"generate.suffix":         "suffix",
	"generate.exclude_fields": "exclude-fields",
	"generate.exclude_types":  "exclude-types",
	"generate.omit_bson_tags": "omit-bson-tags",
}

func bindOptionFlags(c *cobra.Command) error {
	for key, flag := range optionKeys {
		if err := viper.BindPFlag(key, c.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return nil
}

// optionsFromConfig reads generation options from flags, env and config,
// in viper's precedence order.
func optionsFromConfig() *parser.Options {
	return &parser.Options{
		OutDir:        viper.GetString("generate.out_dir"),
		OutFile:       viper.GetString("generate.out_file"),
		Package:       viper.GetString("generate.package"),
		Suffix:        viper.GetString("generate.suffix"),
		ExcludeFields: viper.GetStringSlice("generate.exclude_fields"),
		ExcludeTypes:  viper.GetStringSlice("generate.exclude_types"),
		OmitBSONTags:  viper.GetBool("generate.omit_bson_tags"),
	}
}

func NewGenerateCommand() *cobra.Command {
	// genCmd writes Go API types for one model
	var genCmd = &cobra.Command{
		Use:     "gen MODEL [FIELD...]",
		Short:   "generate Go API types",
		Long:    "Parse a model definition and write Go API types (structs, enums) for it",
		Example: "modelspec gen -o api User 'name:String!' 'gender:Enum{male,female}' 'posts:[Post]:author'",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			return bindOptionFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			res, err := generate.Generate(optionsFromConfig(), args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), res.File)
			return err
		},
	}
	addOptionFlags(genCmd)

	return genCmd
}
