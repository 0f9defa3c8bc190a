// Command hnshape fetches the top Hacker News items, validates each payload
// against its variant schema, and prints one line per item.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hnshape/hnshape/hn"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		limit      = flag.Int("n", 0, "number of top items to fetch (overrides config)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := hn.ConfigFromEnv()
	if *configPath != "" {
		var err error
		cfg, err = hn.ReadConfig(*configPath)
		if err != nil {
			logger.Error("load config", slog.Any("error", err))
			os.Exit(1)
		}
	}
	if *limit > 0 {
		cfg.Limit = *limit
	}

	client := hn.NewClientFromConfig(cfg)

	items, err := client.TopItems(context.Background(), cfg.Limit)
	if err != nil {
		logger.Error("fetch top items", slog.Any("error", err))
		os.Exit(1)
	}
	for i, it := range items {
		fmt.Printf("%2d. %s\n", i+1, formatItem(it))
	}
}

func formatItem(it hn.Item) string {
	switch v := it.(type) {
	case hn.Story:
		return fmt.Sprintf("[story] %s (%d points by %s) %s", v.Title, v.Score, v.By, v.URL)
	case hn.Job:
		return fmt.Sprintf("[job] %s %s", v.Title, v.URL)
	case hn.Poll:
		return fmt.Sprintf("[poll] %s (%d points by %s, %d options)", v.Title, v.Score, v.By, len(v.Parts))
	case hn.PollOpt:
		return fmt.Sprintf("[pollopt] %s (%d points)", v.Text, v.Score)
	case hn.Comment:
		return fmt.Sprintf("[comment] by %s on %d", v.By, v.Parent)
	}
	return fmt.Sprintf("[%s] item %d", it.Kind(), it.ItemID())
}
