// Command trctl is a small command line client for TestRail.
//
// Connection settings come from config.yml, .env or TESTRAIL_* variables:
//
//	TESTRAIL_ENDPOINT=https://example.testrail.io/ \
//	TESTRAIL_USERNAME=user@example.com \
//	TESTRAIL_PASSWORD=api-key \
//	trctl cases list 1 --suite 2 -o yaml
//
// With --otlp-endpoint localhost:4318 the request spans and metrics are
// exported over OTLP HTTP before trctl exits.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newRootCmd(os.Stdout).Execute())
}
