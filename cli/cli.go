package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"pfeifer.dev/sccd/params"
	ms "pfeifer.dev/sccd/settings"
)

// Handle parses the command line. With no subcommand the process continues
// into the daemon loop; every subcommand runs and exits.
func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "settings",
				Aliases: []string{"s"},
				Usage:   "Interactively edit the persisted sccd settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					editSettings()
					return nil
				},
			},
			{
				Name:  "recommended",
				Usage: "Reset the persisted settings to the recommended values",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					params.EnsureParamDirectories()
					ms.Settings.Recommended()
					ms.Settings.Save()
					fmt.Println("wrote recommended settings")
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the persisted settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ms.Settings.Load()
					printSettings()
					return nil
				},
			},
		},
		Name:  "sccd",
		Usage: "Start an instance of sccd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
