package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/unhyperbolic/low-index/pkg/lowindex"
)

var (
	coversRank     int
	coversShort    []string
	coversLong     []string
	coversDegree   int
	coversThreads  int
	coversPreset   string
	coversHistOnly bool
)

var coversCmd = &cobra.Command{
	Use:   "covers",
	Short: "Enumerate permutation representations (subgroups up to conjugacy)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, short, long, degree := coversRank, coversShort, coversLong, coversDegree
		if coversPreset != "" {
			p, err := loadPreset(coversPreset)
			if err != nil {
				return err
			}
			rank, short, long, degree = p.Rank, p.Short, p.Long, p.Degree
		}

		shortRel := make([]lowindex.Relator, len(short))
		for i, s := range short {
			shortRel[i] = s
		}
		longRel := make([]lowindex.Relator, len(long))
		for i, s := range long {
			longRel[i] = s
		}

		logger.Info("starting search",
			"rank", rank, "max_degree", degree,
			"num_threads", coversThreads,
			"num_short", len(short), "num_long", len(long))

		reps, err := lowindex.PermutationReps(context.Background(), rank, shortRel, longRel, degree, coversThreads)
		if err != nil {
			return err
		}

		logger.Info("search complete", "count", len(reps))

		if coversHistOnly {
			printHistogram(reps)
			return nil
		}
		for _, rep := range reps {
			fmt.Println(rep)
		}
		return nil
	},
}

func printHistogram(reps [][][]int) {
	counts := map[int]int{}
	for _, rep := range reps {
		if len(rep) == 0 {
			continue
		}
		counts[len(rep[0])]++
	}
	degrees := make([]int, 0, len(counts))
	for d := range counts {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	for _, d := range degrees {
		fmt.Printf("d=%d: %d\n", d, counts[d])
	}
	fmt.Printf("total: %d\n", len(reps))
}

func init() {
	rootCmd.AddCommand(coversCmd)
	coversCmd.Flags().IntVar(&coversRank, "rank", 2, "number of free generators")
	coversCmd.Flags().StringSliceVar(&coversShort, "short", nil, "short relators (checked at every step)")
	coversCmd.Flags().StringSliceVar(&coversLong, "long", nil, "long relators (checked only on completion)")
	coversCmd.Flags().IntVar(&coversDegree, "degree", 1, "maximum degree (subgroup index bound)")
	coversCmd.Flags().IntVar(&coversThreads, "threads", 0, "worker threads (0 = all hardware threads)")
	coversCmd.Flags().StringVar(&coversPreset, "preset", "", "named group from --config, overrides --rank/--short/--long/--degree")
	coversCmd.Flags().BoolVar(&coversHistOnly, "histogram", false, "print a degree histogram instead of the full permutation list")
}
