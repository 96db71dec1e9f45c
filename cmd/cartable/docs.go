package main

import (
	"fmt"

	"cartable/internal/logger"
	"cartable/internal/storage"

	"github.com/spf13/cobra"
)

func newDocsCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "docs",
		Short: "Manage imported documents",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "import <file>",
			Short: "Copy a file into the binder",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				entry, err := store.ImportDocument(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Imported %s (%s)\n", entry.Name, entry.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List imported documents",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				docs, err := store.ListDocuments()
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					fmt.Println("No documents.")
					return nil
				}
				for _, d := range docs {
					line := d.Name
					if d.Folder != "" {
						line = d.Folder + "/" + d.Name
					}
					fmt.Printf("%s  %s\n", d.ImportedAt.Format("2006-01-02"), line)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "open <name>",
			Short: "Open a document with the system viewer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				return store.OpenDocument(args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a document from the binder",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				if err := store.DeleteDocument(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "move <name> <folder>",
			Short: "File a document into a folder",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				if err := store.MoveToFolder(args[0], args[1]); err != nil {
					return err
				}
				fmt.Printf("Moved %s to %s\n", args[0], args[1])
				return nil
			},
		},
	)
	return &command
}

func newFoldersCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "folders",
		Short: "Manage document folders",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a folder",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				if err := store.CreateFolder(args[0]); err != nil {
					return err
				}
				fmt.Printf("Created folder %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List folders",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store := storage.NewStore(cfg.DataDir, logger.Get())
				folders, err := store.ListFolders()
				if err != nil {
					return err
				}
				if len(folders) == 0 {
					fmt.Println("No folders.")
					return nil
				}
				for _, f := range folders {
					fmt.Println(f)
				}
				return nil
			},
		},
	)
	return &command
}
