package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/oryx"
	"encoding/json"
	"fmt"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func exportSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&oryx.Export{})
	schema.Title = "Oryx keymap export"
	schema.Description = "Keymap export accepted by ezoverlay import."

	return schema
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of accepted keymap exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(exportSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
