package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"file-mover/internal/registry"
)

func newDestinationsCommand(ctx *commandContext) *cobra.Command {
	destCmd := &cobra.Command{
		Use:     "destinations",
		Aliases: []string{"dest"},
		Short:   "Inspect and extend the destination registry",
	}

	destCmd.AddCommand(newDestinationsListCommand(ctx))
	destCmd.AddCommand(newDestinationsAddCommand(ctx))

	return destCmd
}

func newDestinationsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored destinations in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRegistry(func(reg *registry.Registry) error {
				out := cmd.OutOrStdout()
				entries := reg.Entries()
				if len(entries) == 0 {
					fmt.Fprintf(out, "No destinations stored in %s\n", reg.Path())
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for i, entry := range entries {
					rows = append(rows, []string{strconv.Itoa(i + 1), entry, destinationState(entry)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Destination", "State"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newDestinationsAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add DIR",
		Short: "Store a new destination folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			info, err := os.Stat(path)
			if err != nil {
				return registry.WithHint(fmt.Errorf("destination %s: %w", path, err),
					"Create the folder first; destinations must be existing directories")
			}
			if !info.IsDir() {
				return fmt.Errorf("destination %s is not a directory", path)
			}

			return ctx.withRegistry(func(reg *registry.Registry) error {
				added, err := reg.Add(path)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(cmd.OutOrStdout(), "New destination added: %s\n", path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Destination already stored: %s\n", path)
				}
				return nil
			})
		},
	}
}

func destinationState(path string) string {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return "missing"
	case !info.IsDir():
		return "not a directory"
	default:
		return "ok"
	}
}

func (c *commandContext) withRegistry(fn func(*registry.Registry) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	log, err := c.logger(cfg, true)
	if err != nil {
		return err
	}
	reg, err := registry.Open(cfg.RegistryPath, log)
	if err != nil {
		return err
	}
	defer reg.Close()
	return fn(reg)
}
