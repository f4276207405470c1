package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"incsort/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .incsort/config.toml",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false,
		"Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(dirFlag, config.DirName, config.FileName)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(dirFlag); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Set projectRoot (and engineRoot, if any) before the first index run.")
	return nil
}
