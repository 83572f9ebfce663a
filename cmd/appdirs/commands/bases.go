package commands

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(basesCmd)
}

var basesCmd = &cobra.Command{
	Use:   "bases",
	Short: "Print the host's XDG base directories",
	Long: `Print the XDG Base Directory values in effect on this host, as seen at
process startup. Useful for comparing the application paths appdirs
computes against the host's actual base directory state.`,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "home:        %s\n", xdg.Home)
		fmt.Fprintf(w, "data home:   %s\n", xdg.DataHome)
		fmt.Fprintf(w, "config home: %s\n", xdg.ConfigHome)
		fmt.Fprintf(w, "cache home:  %s\n", xdg.CacheHome)
		fmt.Fprintf(w, "state home:  %s\n", xdg.StateHome)
		fmt.Fprintf(w, "data dirs:   %s\n", strings.Join(xdg.DataDirs, ", "))
		fmt.Fprintf(w, "config dirs: %s\n", strings.Join(xdg.ConfigDirs, ", "))
	},
}
