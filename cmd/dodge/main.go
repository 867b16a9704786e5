// dodge is a terminal dodge game: slide along the bottom of the screen and
// avoid the blocks raining down from the top.
//
// Usage:
//
//	dodge                    - Play the game
//	dodge play               - Same as above
//	dodge scores             - Show high scores
//	dodge serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.dodge/scores.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - avoid falling blocks in your terminal",
	Long: `Dodge is a terminal arcade game. Blocks rain down from the top of the
screen; move left and right along the bottom and survive as long as you can.
Score grows by one for every tick survived.

Controls:
  Left/H     - Move left
  Right/L    - Move right
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  dodge
  dodge --seed 42
  dodge scores
  dodge serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
