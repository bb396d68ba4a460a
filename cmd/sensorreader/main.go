package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rowan-sl/hayselnut/src/readings"
)

func main() {
	var file, location string
	flag.StringVar(&file, "file", readings.DefaultFile, "Path to the readings CSV")
	flag.StringVar(&location, "location", "Local", "Time zone readings are normalized to")
	flag.Parse()

	loc, err := time.LoadLocation(location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	rs, err := readings.Load(file, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	s := readings.Summarize(rs)
	fmt.Println(s)
	if s.Count == 0 {
		return
	}
	fmt.Printf("temperature: %.1f .. %.1f C\n", s.Temperature.Min, s.Temperature.Max)
	fmt.Printf("humidity:    %.1f .. %.1f\n", s.Humidity.Min, s.Humidity.Max)
	fmt.Printf("pressure:    %.1f .. %.1f\n", s.Pressure.Min, s.Pressure.Max)
	fmt.Printf("battery:     %.2f .. %.2f\n", s.Battery.Min, s.Battery.Max)
}
