package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	tknormalizer "github.com/tkstack/go-tknormalizer"
)

var (
	configPath     string
	inputFile      string
	outputFile     string
	asJSON         bool
	suffixListPath string
	includePrivate bool
	toPunycode     bool
	quiet          bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tknormalizer [url]...",
		Short: "Canonicalize HTTP(S) URLs for deduplication and indexing",
		Long: "tknormalizer canonicalizes URLs into a deterministic normalized form\n" +
			"and derives the parent and root (registrable domain) forms plus their\n" +
			"SHA-256 digests.",
		Args: cobra.ArbitraryArgs,
		RunE: runNormalize,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	flags.StringVar(&suffixListPath, "suffix-list", "", "path to a local Public Suffix List file")
	flags.BoolVar(&includePrivate, "private-suffixes", false, "honor PRIVATE domain rules (e.g. blogspot.com)")
	flags.BoolVar(&toPunycode, "punycode", false, "fold internationalised hosts to punycode")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read URLs from file, one per line")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write normalized URLs to file, one per line")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per URL instead of colored fields")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print normalized URLs only")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh the local Public Suffix List cache from the upstream mirrors",
		Args:  cobra.NoArgs,
		RunE:  runUpdate,
	}
	rootCmd.AddCommand(updateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildNormalizer(logger *slog.Logger, cfg *Config) (*tknormalizer.Normalizer, error) {
	// Flags override the config file.
	if suffixListPath == "" {
		suffixListPath = cfg.Normalizer.SuffixListPath
	}
	if !includePrivate {
		includePrivate = cfg.Normalizer.IncludePrivateSuffixes
	}
	if !toPunycode {
		toPunycode = cfg.Normalizer.ConvertToPunycode
	}
	return tknormalizer.New(tknormalizer.Params{
		SuffixListPath:         suffixListPath,
		IncludePrivateSuffixes: includePrivate,
		ExtraTrackingParams:    cfg.Normalizer.ExtraTrackingParams,
		ConvertToPunycode:      toPunycode,
		LogErrors:              true,
		Logger:                 logger,
	})
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	urls := args
	if inputFile != "" {
		fileURLs, err := loadURLs(inputFile)
		if err != nil {
			return err
		}
		urls = append(urls, fileURLs...)
	}
	if len(urls) == 0 {
		return errors.New("no URLs given; pass them as arguments or via --file")
	}

	normalizer, err := buildNormalizer(logger, cfg)
	if err != nil {
		return err
	}

	var normalized []string
	var failures int
	for _, url := range urls {
		res, err := normalizer.Normalize(url)
		if err != nil {
			failures++
			continue
		}
		normalized = append(normalized, res.String())
		switch {
		case asJSON:
			line, err := json.Marshal(res.ToMap())
			if err != nil {
				return err
			}
			fmt.Println(string(line))
		case quiet:
			fmt.Println(res)
		default:
			tknormalizer.PrintResult(res)
		}
	}

	if outputFile != "" {
		if err := saveURLs(outputFile, normalized); err != nil {
			return err
		}
	}

	if failures > 0 {
		color.New(color.FgHiRed, color.Bold).Fprintf(os.Stderr, "%d of %d URLs rejected\n", failures, len(urls))
		return fmt.Errorf("%d invalid URLs", failures)
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	normalizer, err := buildNormalizer(logger, cfg)
	if err != nil {
		return err
	}
	if err := normalizer.UpdateSuffixList(); err != nil {
		return err
	}
	logger.Info("public suffix list updated", "path", suffixListPath)
	return nil
}

func loadURLs(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

func saveURLs(filename string, urls []string) error {
	return os.WriteFile(filename, []byte(strings.Join(urls, "\n")+"\n"), 0o644)
}
