package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"kanda-curry/models"
)

// PlotRestaurantMap renders an HTML map of the stored restaurants as a geo
// scatter, one labeled point per restaurant.
func PlotRestaurantMap(restaurants []models.Restaurant, outputPath string) error {
	points := make([]opts.GeoData, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Lat == 0 && r.Lng == 0 {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  r.Name,
			Value: []float64{r.Lng, r.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Kanda Curry Restaurants",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "japan",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Restaurants", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create map file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render restaurant map: %w", err)
	}
	return nil
}
