package cmd

import (
	"fmt"
	"strings"

	"github.com/rmagpantay/aral/internal/identity"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the built-in test accounts",
	Run: func(cmd *cobra.Command, args []string) {
		ident := identity.NewService(identity.Options{})

		fmt.Printf("%-32s  %-16s  %s\n", "Email", "Password", "Profile")
		fmt.Println(strings.Repeat("─", 80))
		for _, a := range ident.TestAccounts() {
			fmt.Printf("%-32s  %-16s  %s\n", a.Email, a.Password, a.Profile)
		}
	},
}
