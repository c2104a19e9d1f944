package main

import (
	"os"

	"github.com/bestfranklinAI/web-scraper-future-studies/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
