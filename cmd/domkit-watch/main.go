// Command domkit-watch runs a scripted sequence of mutations against an
// in-memory document and persists every resulting MutationRecord to a
// SQLite-backed log via gorm, for later inspection.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oxhq/domkit/dom"
	"github.com/oxhq/domkit/internal/config"
	"github.com/oxhq/domkit/watchstore"
)

func runScript(doc *dom.Document) error {
	body := doc.CreateElement("body")
	if err := dom.Append(doc.Node, body); err != nil {
		return err
	}

	item := doc.CreateElement("item")
	if err := item.SetAttribute("data-state", "new"); err != nil {
		return err
	}
	if err := dom.Append(body, item); err != nil {
		return err
	}

	if err := item.SetAttribute("data-state", "active"); err != nil {
		return err
	}
	if err := dom.Append(item, doc.CreateTextNode("loaded")); err != nil {
		return err
	}

	return dom.RemoveChild(body, item)
}

func main() {
	cfg := config.LoadConfig()

	root := &cobra.Command{
		Use:   "domkit-watch",
		Short: "Record a scripted mutation sequence into a SQLite log",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := watchstore.Connect(cfg.DatabasePath, cfg.Debug)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			doc := dom.NewDocument()
			recorder := watchstore.NewRecorder(db, uuid.New().String())
			dom.Observe(doc.Node, recorder, dom.ObserveConfig{
				ChildList:     true,
				Attributes:    true,
				CharacterData: true,
				Subtree:       true,
			})

			if err := runScript(doc); err != nil {
				return fmt.Errorf("running mutation script: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "mutation records written to %s\n", cfg.DatabasePath)
			return nil
		},
	}
	root.Flags().StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the SQLite log")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable gorm query logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
