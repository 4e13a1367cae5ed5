package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sulta24/feedback-app/internal/app"
	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/config"
	"github.com/sulta24/feedback-app/internal/exchange"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "Create", "Export").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.New(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "fb",
	Short: "Personal feedback board",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		boardID := uuid.New().String()
		cfg := config.NewConfig(boardID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Board ID: %s\n", boardID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Board ID:  %s\n", cfg.BoardID)
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Snapshots: %s\n", cfg.Snapshot.Type)
		return nil
	},
}

// add command
var addCmd = &cobra.Command{
	Use:   "add TEXT",
	Short: "Submit a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		category, err := board.ParseCategory(categoryFlag)
		if err != nil {
			return err
		}

		a, err := newApp("Create")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.Store().Create(args[0], category)
		if err != nil {
			return fmt.Errorf("creating record: %w", err)
		}

		fmt.Printf("Added %s\n", id)
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "View feedback items",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("List")
		if err != nil {
			return err
		}
		defer a.Close()

		records := a.Store().View()
		if len(records) == 0 {
			fmt.Println("No feedback items.")
			return nil
		}

		p := newPalette(a.Store().DarkMode())
		for _, r := range records {
			created := time.UnixMilli(r.CreatedAt).Format("2006-01-02 15:04")
			fmt.Printf("%-8s  %s  %s  %s  %s\n",
				shortID(r.ID),
				p.votes(fmt.Sprintf("%+4d", r.Votes)),
				p.category(fmt.Sprintf("%-11s", r.Category)),
				created,
				r.Text,
			)
		}
		return nil
	},
}

// vote command
var voteCmd = &cobra.Command{
	Use:   "vote up|down ID",
	Short: "Vote a feedback item up or down",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := board.ParseDirection(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("Vote")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().Vote(args[1], dir); err != nil {
			return fmt.Errorf("voting: %w", err)
		}
		return nil
	},
}

// edit command
var editCmd = &cobra.Command{
	Use:   "edit ID TEXT",
	Short: "Edit a feedback item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		category, err := board.ParseCategory(categoryFlag)
		if err != nil {
			return err
		}

		a, err := newApp("Edit")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().Edit(args[0], args[1], category); err != nil {
			return fmt.Errorf("editing record: %w", err)
		}
		return nil
	},
}

// remove command
var removeCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Remove")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().Remove(args[0]); err != nil {
			return fmt.Errorf("removing record: %w", err)
		}
		return nil
	},
}

// sort command
var sortCmd = &cobra.Command{
	Use:   "sort votes|created",
	Short: "Set the list sort mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := board.ParseSortMode(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("SetSortMode")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().SetSortMode(mode); err != nil {
			return err
		}

		fmt.Printf("Sorting by %s\n", a.Store().SortMode())
		return nil
	},
}

// filter command
var filterCmd = &cobra.Command{
	Use:   "filter [CATEGORY]",
	Short: "Toggle category visibility",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		none, _ := cmd.Flags().GetBool("none")

		a, err := newApp("ToggleCategoryFilter")
		if err != nil {
			return err
		}
		defer a.Close()
		store := a.Store()

		switch {
		case all || none:
			// The store has no bulk primitive; select-all and select-none
			// are one toggle per category that is currently on the wrong
			// side of the filter.
			visible := make(map[board.Category]bool)
			for _, c := range store.State().CategoryFilter {
				visible[c] = true
			}
			for _, c := range board.Categories() {
				if visible[c] == all {
					continue
				}
				if err := store.ToggleCategoryFilter(c); err != nil {
					return err
				}
			}
		case len(args) == 1:
			category, err := board.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if err := store.ToggleCategoryFilter(category); err != nil {
				return err
			}
		default:
			return fmt.Errorf("specify a category, --all, or --none")
		}

		fmt.Printf("Visible categories: %v\n", store.State().CategoryFilter)
		return nil
	},
}

// theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle dark mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ToggleDarkMode")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().ToggleDarkMode(); err != nil {
			return err
		}
		if a.Store().DarkMode() {
			fmt.Println("Dark mode on")
		} else {
			fmt.Println("Dark mode off")
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export feedback items to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		encrypt, _ := cmd.Flags().GetBool("encrypt")

		a, err := newApp("Export")
		if err != nil {
			return err
		}
		defer a.Close()

		records := a.Store().State().Records

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()

		if encrypt {
			passphrase, err := readPassphrase(true)
			if err != nil {
				return err
			}
			if err := exchange.ExportEncrypted(f, passphrase, records); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
		} else {
			if err := exchange.Export(f, records); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
		}

		fmt.Printf("Exported %d record(s) to %s\n", len(records), out)
		return nil
	},
}

// import command
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import feedback items, replacing the board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		var records []board.Record
		if exchange.IsEncrypted(data) {
			passphrase, err := readPassphrase(false)
			if err != nil {
				return err
			}
			records, err = exchange.ImportEncrypted(bytes.NewReader(data), passphrase)
			if err != nil {
				return err
			}
		} else {
			records, err = exchange.Import(bytes.NewReader(data))
			if err != nil {
				return err
			}
		}

		a, err := newApp("ReplaceAll")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store().ReplaceAll(records); err != nil {
			return fmt.Errorf("importing: %w", err)
		}

		fmt.Printf("Imported %d record(s)\n", len(records))
		return nil
	},
}

// shortID abbreviates UUIDs for list output. Imported ids may be shorter
// than a UUID and are shown as-is.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// readPassphrase prompts for a passphrase without echo. When confirm is
// true, the passphrase is asked twice and must match.
func readPassphrase(confirm bool) (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	if len(first) == 0 {
		return "", fmt.Errorf("passphrase must not be empty")
	}

	if confirm {
		fmt.Fprint(os.Stderr, "Confirm passphrase: ")
		second, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		if string(first) != string(second) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}

	return string(first), nil
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("category", "c", string(board.CategoryOther), "Category: UI, Performance, Feature, or Other")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringP("category", "c", string(board.CategoryOther), "Category: UI, Performance, Feature, or Other")
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().Bool("all", false, "Make every category visible")
	filterCmd.Flags().Bool("none", false, "Hide every category")
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", exchange.SuggestedFilename, "Output file")
	exportCmd.Flags().Bool("encrypt", false, "Encrypt the export with a passphrase")
	rootCmd.AddCommand(importCmd)
}
