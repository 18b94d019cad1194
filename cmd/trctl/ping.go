package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/testrail/observability"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the instance is reachable with the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			h := c.CheckHealth(cmd.Context())
			if err := a.print(h); err != nil {
				return err
			}
			if h.Status != observability.HealthStatusUp {
				return fmt.Errorf("testrail is %s", h.Status)
			}
			return nil
		},
	}
}
