package cmd

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [session|template|config]",
	Short:     "Print the JSON schema of a stored document",
	Long:      `Print the JSON schema of a session, a template or the config file.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"session", "template", "config"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := "session"
		if len(args) == 1 {
			kind = args[0]
		}
		schema, err := documentSchema(kind)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), schema)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func documentSchema(kind string) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	var schema *jsonschema.Schema
	switch strings.ToLower(kind) {
	case "session":
		schema = r.Reflect(&entity.Session{})
		schema.Title = "tabsnap session"
	case "template":
		schema = r.Reflect(&entity.SessionTemplate{})
		schema.Title = "tabsnap session template"
	case "config":
		return config.Schema(), nil
	default:
		return nil, fmt.Errorf("unknown schema %q", kind)
	}
	return schema, nil
}
