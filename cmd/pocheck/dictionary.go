package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/potools/pocheck/internal/config"
	"github.com/potools/pocheck/internal/database"
	"github.com/potools/pocheck/internal/dictionary"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "dictionary",
		Short: "Manage the word lists used by the spelling rules",
	}

	rootCommand.AddCommand(newDictionaryDownloadCommand())
	rootCommand.AddCommand(newDictionaryAddCommand())
	rootCommand.AddCommand(newDictionarySyncCommand())

	return rootCommand
}

func newDictionaryDownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download <language>...",
		Short: "Download word lists for the given languages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			downloader := dictionary.NewDownloader(cfg.Dictionaries.DownloadURL, dictionary.DefaultMaxRetryAttempts)
			defer func() {
				_ = downloader.Close()
			}()

			for _, lang := range args {
				path, err := downloader.Download(cmd.Context(), lang, cfg.Dictionaries.Directory)
				if err != nil {
					return fmt.Errorf("downloader.Download(%s) > %w", lang, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Downloaded word list for %s to %s\n", lang, path)
			}
			return nil
		},
	}
}

func newDictionaryAddCommand() *cobra.Command {
	var addedBy string

	command := &cobra.Command{
		Use:   "add <language> <word>...",
		Short: "Add approved words to the shared terminology store",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			repository := dictionary.NewDBCustomWordRepository(db)
			lang := args[0]
			for _, word := range args[1:] {
				if err := repository.Upsert(cmd.Context(), &dictionary.CustomWord{
					Word:     word,
					Language: lang,
					AddedBy:  addedBy,
				}); err != nil {
					return fmt.Errorf("repository.Upsert(%s) > %w", word, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d word(s) for %s\n", len(args)-1, lang)
			return nil
		},
	}

	command.Flags().StringVar(&addedBy, "added-by", "", "Name recorded as the author of the words")

	return command
}

func newDictionarySyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <language>...",
		Short: "Merge shared custom words into the local word lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			repository := dictionary.NewDBCustomWordRepository(db)
			for _, lang := range args {
				customWords, err := repository.FindAllByLanguage(cmd.Context(), lang)
				if err != nil {
					return fmt.Errorf("repository.FindAllByLanguage(%s) > %w", lang, err)
				}

				added, err := mergeWordList(cfg.Dictionaries.Directory, lang, customWords)
				if err != nil {
					return fmt.Errorf("mergeWordList(%s) > %w", lang, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Synced %s: %d new word(s)\n", lang, added)
			}
			return nil
		},
	}
}

// mergeWordList appends custom words missing from the local word list and
// returns how many were added.
func mergeWordList(dir, lang string, customWords []dictionary.CustomWord) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, lang+".txt")
	existing := map[string]bool{}
	if content, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(content), "\n") {
			existing[strings.TrimSpace(line)] = true
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var missing []string
	for _, customWord := range customWords {
		if word := strings.TrimSpace(customWord.Word); word != "" && !existing[word] {
			missing = append(missing, word)
			existing[word] = true
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("os.OpenFile(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(strings.Join(missing, "\n") + "\n"); err != nil {
		return 0, fmt.Errorf("f.WriteString() > %w", err)
	}
	return len(missing), nil
}
