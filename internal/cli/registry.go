package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var registerCmd = &cobra.Command{
	Use:   "register [trolley-id]",
	Short: "Register a new trolley ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")

		err := wire.RegistryService().RegisterTrolley(context.Background(), primary.RegisterTrolleyRequest{
			NewID: args[0],
			Note:  note,
		})
		if err != nil {
			return fmt.Errorf("failed to register trolley: %w", err)
		}

		fmt.Printf("✓ Registered trolley %s\n", args[0])
		return nil
	},
}

var remapCmd = &cobra.Command{
	Use:   "remap [old-id] [new-id]",
	Short: "Renumber an existing trolley ID",
	Long:  "Record a trolley ID change in the registry audit log. Existing maintenance rows keep the old ID.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")

		err := wire.RegistryService().RemapTrolley(context.Background(), primary.RemapTrolleyRequest{
			OldID: args[0],
			NewID: args[1],
			Note:  note,
		})
		if err != nil {
			return fmt.Errorf("failed to remap trolley: %w", err)
		}

		fmt.Printf("✓ Remapped trolley %s -> %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	registerCmd.Flags().StringP("note", "n", "", "Registry note")
	remapCmd.Flags().StringP("note", "n", "", "Registry note")
}

func RegisterCmd() *cobra.Command {
	return registerCmd
}

func RemapCmd() *cobra.Command {
	return remapCmd
}
