package main

import (
	"github.com/spf13/cobra"

	"github.com/d5c5ceb0/polymarket-cli/internal/output"
)

func newWalletCmd(c *cli) *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local wallet",
	}

	var createForce bool
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new random wallet and save to config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.wallets.CreateWallet(cmd.Context(), createForce)
			if err != nil {
				return err
			}
			if c.printer.IsJSON() {
				return c.printer.JSON(resp)
			}
			c.printer.Line("Wallet created successfully!")
			c.printer.Table([]output.Row{
				{Label: "Address", Value: resp.Address},
				{Label: "Config", Value: resp.ConfigPath},
			})
			c.printer.Line("")
			c.printer.Warn("IMPORTANT: Back up your private key from the config file.")
			c.printer.Warn("           If lost, your funds cannot be recovered.")
			return nil
		},
	}
	createCmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing wallet")
	walletCmd.AddCommand(createCmd)

	var importForce bool
	importCmd := &cobra.Command{
		Use:   "import <key>",
		Short: "Import an existing private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.wallets.ImportWallet(cmd.Context(), args[0], importForce)
			if err != nil {
				return err
			}
			if c.printer.IsJSON() {
				return c.printer.JSON(resp)
			}
			c.printer.Line("Wallet imported successfully!")
			c.printer.Table([]output.Row{
				{Label: "Address", Value: resp.Address},
				{Label: "Config", Value: resp.ConfigPath},
			})
			return nil
		},
	}
	importCmd.Flags().BoolVar(&importForce, "force", false, "Overwrite an existing wallet")
	walletCmd.AddCommand(importCmd)

	walletCmd.AddCommand(&cobra.Command{
		Use:   "address",
		Short: "Show the address of the configured wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.wallets.GetAddress(cmd.Context(), c.privateKey)
			if err != nil {
				return err
			}
			if c.printer.IsJSON() {
				return c.printer.JSON(resp)
			}
			c.printer.Line(resp.Address)
			return nil
		},
	})

	walletCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show wallet info (address, config path, key source)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.wallets.ShowWallet(cmd.Context(), c.privateKey)
			if err != nil {
				return err
			}
			if c.printer.IsJSON() {
				return c.printer.JSON(info)
			}
			address := "(not configured)"
			if info.Address != nil {
				address = *info.Address
			}
			c.printer.Table([]output.Row{
				{Label: "Address", Value: address},
				{Label: "Config path", Value: info.ConfigPath},
				{Label: "Key source", Value: info.Source},
			})
			return nil
		},
	})

	return walletCmd
}
