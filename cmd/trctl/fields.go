package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/testrail/model"
)

func newFieldsCmd(a *app) *cobra.Command {
	var results bool
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the custom fields configured for cases or results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			var fields model.Fields
			if results {
				fields, err = c.ResultFields.List(cmd.Context())
			} else {
				fields, err = c.CaseFields.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(fieldRows(fields))
		},
	}
	cmd.Flags().BoolVar(&results, "results", false, "list result fields instead of case fields")
	return cmd
}

type fieldRow struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
	Configs  int    `json:"configs" yaml:"configs"`
}

func fieldRows(fields model.Fields) []fieldRow {
	rows := make([]fieldRow, len(fields))
	for i, f := range fields {
		required := false
		for _, cfg := range f.Configs {
			required = required || cfg.Required()
		}
		rows[i] = fieldRow{
			Name:     f.SystemName,
			Label:    f.Label,
			Type:     f.Type().String(),
			Required: required,
			Configs:  len(f.Configs),
		}
	}
	return rows
}
