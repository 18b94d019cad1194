package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/testrail"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and show projects",
	}

	var completed string
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f testrail.ProjectFilter
			if completed != "" {
				b, err := strconv.ParseBool(completed)
				if err != nil {
					return err
				}
				f.IsCompleted = &b
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			projects, err := c.Projects.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.print(projects)
		},
	}
	list.Flags().StringVar(&completed, "completed", "", "only completed (true) or active (false) projects")

	get := &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("PROJECT_ID", args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			p, err := c.Projects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(p)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func parseID(name, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, &argError{name: name, value: s}
	}
	return id, nil
}

type argError struct {
	name, value string
}

func (e *argError) Error() string {
	return e.name + " must be a number, got " + strconv.Quote(e.value)
}
