package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), "mathgame", resolveVersion(version, info))
	},
}

// resolveVersion prefers the -ldflags version, then the module version
// recorded by `go install`.
func resolveVersion(linked string, info *debug.BuildInfo) string {
	if linked != "" && linked != "(devel)" {
		return linked
	}
	if info != nil && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
