package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/iterate"
)

var (
	scenario string
	level    int
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Build a sample forest and count traversal callbacks",
	Example: `  # One quadtree, refined twice
  forestwalk walk --scenario unitsquare --level 2

  # Four octrees sharing a non-conforming edge
  forestwalk walk --scenario edgering --level 1`,
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringVarP(&scenario, "scenario", "s", "unitsquare",
		"connectivity scenario: unitsquare, unitcube, twotrees, edgering")
	walkCmd.Flags().IntVarP(&level, "level", "l", 1, "uniform refinement level")
	_ = viper.BindPFlag("scenario", walkCmd.Flags().Lookup("scenario"))
	_ = viper.BindPFlag("level", walkCmd.Flags().Lookup("level"))
}

func runWalk(cmd *cobra.Command, args []string) error {
	scenario = viper.GetString("scenario")
	if viper.IsSet("level") {
		level = viper.GetInt("level")
	}

	var conn *forest.Connectivity
	switch scenario {
	case "unitsquare":
		conn = forest.UnitSquare()
	case "unitcube":
		conn = forest.UnitCube()
	case "twotrees":
		conn = forest.TwoTrees()
	case "edgering":
		conn = forest.EdgeRing()
	default:
		return fmt.Errorf("forestwalk: unknown scenario %q", scenario)
	}
	f := forest.NewUniform(conn, int8(level))

	var volumes, faces, hanging, boundary, edges, corners int
	opts := []iterate.Option{
		iterate.WithVolume(func(*iterate.Volume) { volumes++ }),
		iterate.WithFace(func(fi *iterate.Face) {
			faces++
			if fi.Hanging {
				hanging++
			}
			if fi.Boundary {
				boundary++
			}
		}),
		iterate.WithEdge(func(*iterate.Edge) { edges++ }),
		iterate.WithCorner(func(*iterate.Corner) { corners++ }),
	}
	if viper.GetBool("verbose") {
		opts = append(opts, iterate.WithVerbose(log.New(os.Stderr, "forestwalk ", log.LstdFlags)))
	}
	if err := iterate.Iterate(f, nil, opts...); err != nil {
		return err
	}

	fmt.Printf("scenario %s, dim %d, level %d\n", scenario, conn.Dim, level)
	fmt.Printf("  volumes  %d\n", volumes)
	fmt.Printf("  faces    %d (hanging %d, boundary %d)\n", faces, hanging, boundary)
	if conn.Dim == 3 {
		fmt.Printf("  edges    %d\n", edges)
	}
	fmt.Printf("  corners  %d\n", corners)
	return nil
}
