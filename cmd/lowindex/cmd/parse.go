package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhyperbolic/low-index/pkg/lowindex"
)

var parseRank int

var parseCmd = &cobra.Command{
	Use:   "parse [word]",
	Short: "Parse and free/cyclically reduce a single relator word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := lowindex.ParseWord(parseRank, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  (length %d, letters %v)\n", w.String(), len(w), []int32(w))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().IntVar(&parseRank, "rank", 2, "number of free generators")
}
