package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kass/go-map-overlay/pkg/models"
	"github.com/kass/go-map-overlay/pkg/overlay"
	"github.com/kass/go-map-overlay/pkg/registry"
)

var (
	snapshotFile string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "map-overlay",
	Short: "Ground overlay collection tooling",
	Long:  `Build, inspect and query collections of ground overlays: geo-referenced images draped over a map surface.`,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a sample overlay collection",
	Long:  `Generate random ground overlays across all positioning modes and write the collection to a JSON snapshot file.`,
	RunE:  runSample,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Inspect a snapshot file",
	Long:  `List the overlay identifiers recorded in a JSON snapshot file.`,
	RunE:  runShow,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a region query over a sample collection",
	Long:  `Generate a seeded sample collection and print the overlays whose extent intersects the given region.`,
	RunE:  runQuery,
}

var (
	numOverlays int
	seed        int64
	swLat       float64
	swLng       float64
	neLat       float64
	neLng       float64
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "file", "f", "overlays.json", "Snapshot file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	sampleCmd.Flags().IntVarP(&numOverlays, "overlays", "n", 100, "Number of overlays to generate")
	sampleCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "Random seed")

	queryCmd.Flags().IntVarP(&numOverlays, "overlays", "n", 100, "Number of overlays to generate")
	queryCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "Random seed")
	queryCmd.Flags().Float64Var(&swLat, "sw-lat", 30.0, "Southwest latitude of the query region")
	queryCmd.Flags().Float64Var(&swLng, "sw-lng", -130.0, "Southwest longitude of the query region")
	queryCmd.Flags().Float64Var(&neLat, "ne-lat", 50.0, "Northeast latitude of the query region")
	queryCmd.Flags().Float64Var(&neLng, "ne-lng", -60.0, "Northeast longitude of the query region")

	rootCmd.AddCommand(sampleCmd, showCmd, queryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	fmt.Printf("Generating %d sample ground overlays...\n", numOverlays)

	reg, err := generateRegistry(numOverlays, seed)
	if err != nil {
		return err
	}

	if err := reg.SaveToFile(snapshotFile); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("Wrote %d overlays to %s\n", reg.Len(), snapshotFile)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := registry.ReadSnapshotFile(snapshotFile)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d overlays\n", snapshotFile, len(ids))
	if verbose {
		for _, id := range ids {
			fmt.Printf("  %s\n", id)
		}
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	reg, err := generateRegistry(numOverlays, seed)
	if err != nil {
		return err
	}

	region := models.BoundingBox{
		Southwest: models.Location{Latitude: swLat, Longitude: swLng},
		Northeast: models.Location{Latitude: neLat, Longitude: neLng},
	}

	matches := reg.QueryRegion(region)
	fmt.Printf("%d of %d overlays intersect the region\n", len(matches), reg.Len())

	for _, g := range matches {
		if verbose {
			raw, err := g.MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			continue
		}
		fmt.Printf("  %s (%s)\n", g.ID(), g.PositionMode())
	}
	return nil
}

// generateRegistry builds a seeded collection spanning all positioning
// modes with randomized styling.
func generateRegistry(n int, seed int64) (*registry.Registry, error) {
	rng := rand.New(rand.NewSource(seed))
	reg := registry.New()

	for i := 0; i < n; i++ {
		id := overlay.NewGroundOverlayID(uuid.NewString())
		styling := []overlay.Option{
			overlay.WithZIndex(rng.Intn(10)),
			overlay.WithTransparency(rng.Float64()),
			overlay.WithBearing(rng.Float64() * 360),
			overlay.WithVisible(rng.Intn(4) != 0),
		}

		lat := rng.Float64()*170 - 85
		lng := rng.Float64()*360 - 180

		var g *overlay.GroundOverlay
		var err error
		switch i % 3 {
		case 0:
			g, err = overlay.NewAtLocation(id,
				models.Location{Latitude: lat, Longitude: lng},
				rng.Float64()*1000+1, rng.Float64()*1000+1, styling...)
		case 1:
			g, err = overlay.NewAtLocationWithWidth(id,
				models.Location{Latitude: lat, Longitude: lng},
				rng.Float64()*1000+1, styling...)
		default:
			g, err = overlay.NewWithBounds(id, models.BoundingBox{
				Southwest: models.Location{Latitude: lat, Longitude: lng},
				Northeast: models.Location{
					Latitude:  lat + rng.Float64()*2,
					Longitude: lng + rng.Float64()*2,
				},
			}, styling...)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to build overlay %d: %w", i, err)
		}

		if err := reg.Add(g); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
