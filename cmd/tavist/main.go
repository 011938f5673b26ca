// Package main is the entry point for the tavist combat helper
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tavist",
	Short: "Combat helper for Tavist",
	Long: `tavist resolves Tavist's swings, narrows down the opponent's armor class from
what hit and what missed, and recommends power attack and weapon mode.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.powerAttack, "power-attack", "0", "power attack amount")
	flags.BoolVar(&opts.twoHanded, "two-handed", false, "wield the katana two-handed")
	flags.BoolVar(&opts.fatigued, "fatigued", false, "apply fatigue")
	flags.StringVar(&opts.externalHit, "ext-hit", "0", "external attack modifier")
	flags.StringVar(&opts.externalStr, "ext-str", "0", "external strength damage modifier")
	flags.BoolVar(&opts.surge, "surge", false, "include the power surge bonus")
	flags.BoolVar(&opts.evil, "evil", false, "opponent is evil (adds holy damage)")
	flags.StringVar(&opts.expertise, "expertise", "0", "combat expertise amount")
	flags.BoolVar(&opts.auto, "auto", false, "apply the recommended setup at the estimated AC before attacking")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(swingCmd)
	rootCmd.AddCommand(attackCmd)
}
