package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "forestwalk",
	Short: "Traverse sample adaptive-mesh forests",
	Long: `forestwalk builds small sample forests of quadtrees or octrees and
runs the quadforest traversal over them, reporting how many volume,
face, edge and corner callbacks fire.

It exists to poke at the library: pick a connectivity scenario, a
uniform refinement level, and compare the counts against what the mesh
geometry predicts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("forestwalk: reading config: %w", err)
			}
		}
		return nil
	},
}

// Execute runs the command tree.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with scenario defaults (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log traversal diagnostics")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
