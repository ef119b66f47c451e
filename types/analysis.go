package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type DataSet interface{}

// Analyzer computes a dataset from the traces of one experiment run
type Analyzer func(run int, name string, traces []*Trace) DataSet

// Comparator consumes the datasets of all experiments of one run side by side
type Comparator func(run int, names []string, data []DataSet)

// EpisodeReturns collects the total reward of each episode
func EpisodeReturns() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		returns := make([]float64, 0, len(traces))
		for _, trace := range traces {
			if trace == nil {
				continue
			}
			returns = append(returns, trace.Return())
		}
		return returns
	}
}

// ObservationCoverage counts the cumulative number of unique observations
// visited across episodes
func ObservationCoverage() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		unique := make(map[string]bool)
		numUnique := make([]int, 0, len(traces))
		for _, trace := range traces {
			if trace == nil {
				continue
			}
			for j := 0; j < trace.Len(); j++ {
				step, _ := trace.Get(j)
				hash := step.Observation.Hash()
				if _, ok := unique[hash]; !ok {
					unique[hash] = true
				}
			}
			numUnique = append(numUnique, len(unique))
		}
		return numUnique
	}
}

// ReturnPlotter plots the per episode returns of each experiment as one line
func ReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, data []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(names); i++ {
			returns := data[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}

// CoveragePlotter plots the cumulative unique observation counts
func CoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, data []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Observations covered"
		for i := 0; i < len(names); i++ {
			unique := data[i].([]int)
			points := make(plotter.XYs, len(unique))
			for j, v := range unique {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}

// ReturnSummary prints the mean return of each experiment
func ReturnSummary() Comparator {
	return func(run int, names []string, data []DataSet) {
		for i, name := range names {
			returns, ok := data[i].([]float64)
			if !ok || len(returns) == 0 {
				continue
			}
			sum := float64(0)
			for _, v := range returns {
				sum += v
			}
			fmt.Printf("Mean return: %.3f over %d episodes for experiment: %s\n", sum/float64(len(returns)), len(returns), name)
		}
	}
}
