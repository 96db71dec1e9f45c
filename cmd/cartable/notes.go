package main

import (
	"fmt"
	"io"

	"cartable/internal/logger"
	"cartable/internal/storage"

	"github.com/spf13/cobra"
)

func newNotesCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "notes",
		Short: "Manage text notes",
	}

	createCommand := cobra.Command{
		Use:   "create <title>",
		Short: "Create a note, reading the content from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read note content: %w", err)
			}
			store := storage.NewStore(cfg.DataDir, logger.Get())
			entry, err := store.CreateNote(args[0], string(content))
			if err != nil {
				return err
			}
			fmt.Printf("Created note %q (%s)\n", entry.Title, entry.File)
			return nil
		},
	}

	command.AddCommand(
		&createCommand,
		&cobra.Command{
			Use:   "list",
			Short: "List notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				notes, err := store.ListNotes()
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					fmt.Println("No notes.")
					return nil
				}
				for _, n := range notes {
					fmt.Printf("%s  %s\n", n.CreatedAt.Format("2006-01-02"), n.Title)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <title>",
			Short: "Print the content of a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				content, err := store.ReadNote(args[0])
				if err != nil {
					return err
				}
				fmt.Print(content)
				if len(content) > 0 && content[len(content)-1] != '\n' {
					fmt.Println()
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit <title>",
			Short: "Replace the content of a note from stdin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read note content: %w", err)
				}
				store := storage.NewStore(cfg.DataDir, logger.Get())
				if err := store.UpdateNote(args[0], string(content)); err != nil {
					return err
				}
				fmt.Printf("Updated note %q\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <title>",
			Short: "Delete a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				if err := store.DeleteNote(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted note %q\n", args[0])
				return nil
			},
		},
	)
	return &command
}
