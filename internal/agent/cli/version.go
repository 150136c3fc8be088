package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd выводит версию клиента, дату сборки и платформу.
//
//	mesto version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mesto %s\nbuild_date=%s\nplatform=%s/%s\n",
				buildVersion, buildDate, runtime.GOOS, runtime.GOARCH)
		},
	}
}
