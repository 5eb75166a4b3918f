package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhyperbolic/low-index/pkg/lowindex"
)

var cpuinfoCmd = &cobra.Command{
	Use:   "cpuinfo",
	Short: "Report the worker count a num_threads=0 run would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(lowindex.HardwareConcurrency())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cpuinfoCmd)
}
