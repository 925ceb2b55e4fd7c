package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/mixtape-labs/mixtape/config"
	"github.com/mixtape-labs/mixtape/internal/domain"
	"github.com/mixtape-labs/mixtape/internal/generator"
	"github.com/mixtape-labs/mixtape/internal/spotify"
)

func main() {
	prefsPath := flag.String("prefs", "", "Path to a preferences JSON file (required)")
	configPath := flag.String("config", "./config/config.yaml", "Path to config file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *prefsPath == "" {
		log.Fatal("Missing required flag: -prefs")
	}

	_ = godotenv.Load()
	token := os.Getenv("SPOTIFY_TOKEN")
	if token == "" {
		log.Fatal("Missing SPOTIFY_TOKEN environment variable")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(*prefsPath)
	if err != nil {
		log.Fatal(err)
	}
	var prefs domain.PreferenceSet
	if err := json.Unmarshal(raw, &prefs); err != nil {
		log.Fatal(err)
	}

	bar := progressbar.NewOptions(
		100,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "[", BarEnd: "]"}),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription("[cyan]Generating playlist...[reset]"),
	)

	catalog := spotify.NewClient(cfg.Spotify.APIBaseURL, token)
	gen := generator.New(cfg.Generator)

	tracks := gen.GenerateWithProgress(context.Background(), catalog, prefs, func(percent int, message string) {
		bar.Describe(message)
		_ = bar.Set(percent)
	})
	fmt.Println()

	if len(tracks) == 0 {
		fmt.Println("No tracks found for these preferences.")
		return
	}

	for i, track := range tracks {
		artist := ""
		if len(track.Artists) > 0 {
			artist = track.Artists[0].Name
		}
		fmt.Printf("%02d. %s - %s\n", i+1, artist, track.Name)
	}
}
