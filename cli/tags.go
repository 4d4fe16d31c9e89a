package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"greg-hacke/jpeg-forensics/tags"
)

type tagEntry struct {
	ID          string            `yaml:"id"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description,omitempty"`
	Values      map[string]string `yaml:"values,omitempty"`
}

// NewTagsCommand lists the tag tables the decoder knows
func NewTagsCommand() *cobra.Command {
	var (
		asYAML  bool
		noColor bool
		group   string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the known EXIF tags",
		Long:  "List the registered tag tables with the labels used in reports and the raw dump.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var tables []tags.Table
			for _, table := range tags.Tables() {
				if group == "" || strings.EqualFold(group, table.IFD.Group()) {
					tables = append(tables, table)
				}
			}
			if len(tables) == 0 {
				return fmt.Errorf("unknown tag group: %s", group)
			}

			out := cmd.OutOrStdout()
			if asYAML {
				doc := make(map[string][]tagEntry, len(tables))
				for _, table := range tables {
					for _, def := range table.Tags {
						doc[table.IFD.Group()] = append(doc[table.IFD.Group()], entryOf(table.IFD, def))
					}
				}
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("failed to encode tag tables: %w", err)
				}
				return enc.Close()
			}

			heading := color.New(color.Bold, color.FgCyan)
			if noColor {
				heading.DisableColor()
			}
			for i, table := range tables {
				if i > 0 {
					fmt.Fprintln(out)
				}
				heading.Fprintf(out, "%s (%d tags)\n", table.IFD.Group(), len(table.Tags))
				for _, def := range table.Tags {
					fmt.Fprintf(out, "  0x%04X  %s\n", def.ID, tags.Label(tags.Code{IFD: table.IFD, ID: def.ID}))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the tables as YAML")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&group, "group", "", "only list one group (Image, Thumbnail, EXIF, GPS, Interoperability)")

	return cmd
}

func entryOf(ifd tags.IFD, def tags.TagDef) tagEntry {
	e := tagEntry{
		ID:          fmt.Sprintf("0x%04X", def.ID),
		Label:       tags.Label(tags.Code{IFD: ifd, ID: def.ID}),
		Description: def.Description,
	}
	if len(def.Values) > 0 {
		e.Values = make(map[string]string, len(def.Values))
		for raw, name := range def.Values {
			e.Values[fmt.Sprint(raw)] = name
		}
	}
	return e
}
