package spdlog_test

import (
	"fmt"
	"os"
	"time"

	"github.com/Montellese/spdlog"
)

func ExampleNewPatternFormatter() {
	f := spdlog.NewPatternFormatterWithOptions(
		"%Y-%m-%d %T [%L] %v",
		spdlog.PatternOptions{UTC: true, EOL: "\n"},
	)

	r := spdlog.Record{
		Name:    "cache",
		Level:   spdlog.WarnLevel,
		Message: "cache miss",
		Time:    time.Date(2024, time.March, 5, 6, 7, 8, 0, time.UTC),
		Buf:     spdlog.NewBuffer(),
	}
	f.Format(&r)
	fmt.Print(r.Buf.String())

	// Output: 2024-03-05 06:07:08 [W] cache miss
}

func ExampleLogger() {
	logger := spdlog.NewWithOptions("shop", os.Stdout, spdlog.Options{
		Pattern: "[%n] [%l] %v",
		EOL:     "\n",
	})
	logger.Info("open for business")

	// Output: [shop] [info] open for business
}
