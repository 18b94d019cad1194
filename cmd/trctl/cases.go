package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/testrail"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/util"
	"github.com/kbukum/testrail/validation"
)

func newCasesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List and show test cases with their custom fields",
	}

	var suiteID, sectionID int
	list := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List the cases of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID("PROJECT_ID", args[0])
			if err != nil {
				return err
			}
			var f testrail.CaseFilter
			if sectionID != 0 {
				f.SectionID = util.Ptr(sectionID)
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			fields, err := c.CaseFields.List(cmd.Context())
			if err != nil {
				return err
			}
			cases, err := c.Cases.List(cmd.Context(), projectID, suiteID, f, fields.Definitions())
			if err != nil {
				return err
			}
			return a.printCases(cases...)
		},
	}
	list.Flags().IntVar(&suiteID, "suite", 0, "suite id, required unless the project has a single suite")
	list.Flags().IntVar(&sectionID, "section", 0, "only cases of this section")

	get := &cobra.Command{
		Use:   "get CASE_ID",
		Short: "Show a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("CASE_ID", args[0])
			if err != nil {
				return err
			}
			if err := validation.ID("caseId", id); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			fields, err := c.CaseFields.List(cmd.Context())
			if err != nil {
				return err
			}
			tc, err := c.Cases.Get(cmd.Context(), id, fields.Definitions())
			if err != nil {
				return err
			}
			docs, err := caseDocuments([]model.Case{tc})
			if err != nil {
				return err
			}
			return a.print(docs[0])
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func (a *app) printCases(cases ...model.Case) error {
	docs, err := caseDocuments(cases)
	if err != nil {
		return err
	}
	return a.print(docs)
}

func caseDocuments(cases []model.Case) ([]map[string]any, error) {
	docs := make([]map[string]any, 0, len(cases))
	for _, tc := range cases {
		doc, err := withCustomFields(tc, tc.CustomFields)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
