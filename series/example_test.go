package series_test

import (
	"fmt"

	"github.com/cwbudde/algo-series/series"
)

func ExampleSeries_ColumnMajor() {
	// Three time points, two channels.
	s, _ := series.FromRows([][]float64{
		{1, 4},
		{2, 5},
		{3, 6},
	})

	for _, channel := range s.ColumnMajor() {
		fmt.Println(channel)
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
}

func ExampleFromColumns() {
	// Two channels of three samples each, back into time-major order.
	s, _ := series.FromColumns([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	for t := range s.Len() {
		fmt.Println(s.Row(t))
	}
	// Output:
	// [1 4]
	// [2 5]
	// [3 6]
}
