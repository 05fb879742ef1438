package visualize

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// SaveLearningCurve saves an HTML line chart of the per-episode values
// of each series to filename
func SaveLearningCurve(filename, title string, series ...Series) error {
	episodes := 0
	for _, s := range series {
		if len(s.Values) > episodes {
			episodes = len(s.Values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
	)

	steps := make([]string, episodes)
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(steps)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveLearningCurve: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("saveLearningCurve: %w", err)
	}
	return nil
}
