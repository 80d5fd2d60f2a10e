package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/studiowebux/sniprrr/internal/config"
	"github.com/studiowebux/sniprrr/internal/history"
	"github.com/studiowebux/sniprrr/internal/settings"
	"github.com/studiowebux/sniprrr/internal/store"
	"github.com/studiowebux/sniprrr/internal/types"
	"gopkg.in/yaml.v3"
)

// ListOptions contains options for listing snippets
type ListOptions struct {
	OutputFormat string // text, json, yaml
}

// List prints the stored snippets to stdout.
func List(s *store.Store, opts ListOptions) error {
	snippets, _ := s.Load()

	switch opts.OutputFormat {
	case "", "text":
		if len(snippets) == 0 {
			fmt.Println("No snippets.")
			return nil
		}
		for i, snippet := range snippets {
			fmt.Printf("%3d  %-30s  %s\n", i, snippet.Title, snippet.Description)
		}
		return nil

	case "json":
		data, err := json.MarshalIndent(snippets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snippets: %w", err)
		}
		fmt.Println(string(data))
		return nil

	case "yaml":
		data, err := yaml.Marshal(snippets)
		if err != nil {
			return fmt.Errorf("failed to marshal snippets: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	return fmt.Errorf("unknown output format: %s (want text, json, or yaml)", opts.OutputFormat)
}

// Add appends a snippet and persists the list.
func Add(s *store.Store, title, description string) error {
	snippets, _ := s.Load()
	snippets = append(snippets, types.Snippet{Title: title, Description: description})

	if err := s.Save(snippets); err != nil {
		return err
	}

	recordEvent(types.ActionAdd, title, description)
	fmt.Fprintf(os.Stderr, "Saved %q (%d snippets)\n", title, len(snippets))
	return nil
}

// Remove deletes the snippet at the given position and persists the list.
func Remove(s *store.Store, indexArg string) error {
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("invalid index %q", indexArg)
	}

	snippets, _ := s.Load()
	if index < 0 || index >= len(snippets) {
		return fmt.Errorf("index %d out of range (have %d snippets)", index, len(snippets))
	}

	title := snippets[index].Title
	description := snippets[index].Description
	snippets = append(snippets[:index], snippets[index+1:]...)

	if err := s.Save(snippets); err != nil {
		return err
	}

	recordEvent(types.ActionDelete, title, description)
	fmt.Fprintf(os.Stderr, "Deleted %q (%d snippets)\n", title, len(snippets))
	return nil
}

// Copy writes the description at the given position to the clipboard.
func Copy(s *store.Store, indexArg string) error {
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("invalid index %q", indexArg)
	}

	snippets, _ := s.Load()
	if index < 0 || index >= len(snippets) {
		return fmt.Errorf("index %d out of range (have %d snippets)", index, len(snippets))
	}

	if err := clipboard.WriteAll(snippets[index].Description); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	recordEvent(types.ActionCopy, snippets[index].Title, snippets[index].Description)
	fmt.Fprintf(os.Stderr, "Copied %q to clipboard\n", snippets[index].Title)
	return nil
}

// recordEvent logs to the history database, best effort. CLI commands
// open and close the database per invocation.
func recordEvent(action, title, description string) {
	if config.DatabasePath == "" {
		return
	}

	settingsMgr := settings.NewManager()
	settingsMgr.Load()
	if hist := settingsMgr.Get().HistoryEnabled; hist == nil || !*hist {
		return
	}

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return
	}
	defer mgr.Close()
	_ = mgr.Record(action, title, description)
}
