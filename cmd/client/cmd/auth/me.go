// cmd/client/cmd/auth/me.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/spf13/cobra"
)

var meJSON bool

var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "Показать профиль текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			return fmt.Errorf("сначала войдите в систему: artscout auth login")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := app.Me(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения профиля: %w", err)
		}

		if meJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(u)
		}

		fmt.Println("=== Профиль ===")
		fmt.Printf("Имя:     %s\n", u.Fullname)
		fmt.Printf("Email:   %s\n", u.Email)
		fmt.Printf("Аватар:  %s\n", u.ProfileImageURL)
		return nil
	},
}

func init() {
	MeCmd.Flags().BoolVar(&meJSON, "json", false, "вывод в формате JSON")
}
