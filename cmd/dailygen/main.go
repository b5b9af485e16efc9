// Command dailygen prepares published-answer tables offline. The generate
// subcommand emits daily.json entries for a date range; verify checks that a
// bird id produces a given published hash.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"audiobirdle/internal/catalog"
	"audiobirdle/internal/config"
	"audiobirdle/internal/game"
	"audiobirdle/internal/models"
)

func main() {
	// Define subcommands
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)

	// Generate flags
	genRegion := generateCmd.String("region", "us", "Region to generate entries for")
	genStart := generateCmd.String("start", "", "First date, YYYY-MM-DD (default: today)")
	genDays := generateCmd.Int("days", 7, "Number of days to generate")
	genBird := generateCmd.String("bird", "", "Pin every generated day to this bird id (default: deterministic selection)")
	genSubregion := generateCmd.String("subregion", "", "Subregion label attached to every entry")
	genOutput := generateCmd.String("output", "", "Output file path (default: stdout)")

	// Verify flags
	verifyBird := verifyCmd.String("bird", "", "Bird id to verify (required)")
	verifyHash := verifyCmd.String("hash", "", "Published hash to verify against (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		handleGenerate(cfg, *genRegion, *genStart, *genDays, *genBird, *genSubregion, *genOutput)

	case "verify":
		verifyCmd.Parse(os.Args[2:])
		if *verifyBird == "" || *verifyHash == "" {
			fmt.Println("Error: -bird and -hash flags are required")
			verifyCmd.PrintDefaults()
			os.Exit(1)
		}
		handleVerify(cfg, *verifyBird, *verifyHash)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleGenerate(cfg *config.Config, region, start string, days int, birdID, subregion, outputPath string) {
	loader := catalog.NewLoader(cfg.DataPath, cfg.DataBaseURL)
	data, err := loader.LoadGameData()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	birds := data.Catalog(region)
	if len(birds) == 0 {
		log.Fatalf("Region %q has no bird catalog", region)
	}

	startDate := time.Now()
	if start != "" {
		startDate, err = time.Parse(game.DateLayout, start)
		if err != nil {
			log.Fatalf("Invalid start date %q: %v", start, err)
		}
	}

	if birdID != "" && findBird(birds, birdID) == nil {
		log.Fatalf("Bird %q is not in the %q catalog", birdID, region)
	}

	entries := make([]models.DailyAnswerEntry, 0, days)
	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i).Format(game.DateLayout)

		answer := birdID
		if answer == "" {
			answer = game.FallbackDailyBird(region, birds, date).ID
		}

		entries = append(entries, models.DailyAnswerEntry{
			Date:       date,
			Region:     region,
			AnswerHash: game.HashBirdID(answer, cfg.DailySalt),
			Subregion:  subregion,
		})
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode entries: %v", err)
	}
	out = append(out, '\n')

	if outputPath == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Wrote %d entries to %s\n", len(entries), outputPath)
}

func handleVerify(cfg *config.Config, birdID, hash string) {
	computed := game.HashBirdID(birdID, cfg.DailySalt)
	if strings.EqualFold(computed, hash) {
		fmt.Printf("OK: %s -> %s\n", birdID, computed)
		return
	}
	fmt.Printf("MISMATCH: %s hashes to %s, table says %s\n", birdID, computed, hash)
	os.Exit(1)
}

func findBird(birds []models.Bird, id string) *models.Bird {
	for i := range birds {
		if birds[i].ID == id {
			return &birds[i]
		}
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage: dailygen <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate published-answer entries for a date range")
	fmt.Println("  verify      Check a bird id against a published hash")
	fmt.Println()
	fmt.Println("Run 'dailygen <command> -h' for command flags.")
}
