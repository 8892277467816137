package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bulletinwatch/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Runs the interactive Google authorization flow and caches the token.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		auth := cfg.authorizer()

		fmt.Println("visit the following url, grant access, then paste the authorization code here:")
		fmt.Println()
		fmt.Println("  " + auth.AuthURL("state-token"))
		fmt.Println()
		fmt.Print("authorization code: ")

		reader := bufio.NewReader(os.Stdin)
		code, err := reader.ReadString('\n')
		if err != nil {
			serviceutil.Fatal("failed to read authorization code", err)
		}

		err = auth.Exchange(cmd.Context(), strings.TrimSpace(code))
		if err != nil {
			serviceutil.Fatal("failed to exchange authorization code", err)
		}
		fmt.Println("token cached at", auth.TokenFile)
	},
}
