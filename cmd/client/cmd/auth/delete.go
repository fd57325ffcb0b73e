// cmd/client/cmd/auth/delete.go
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/spf13/cobra"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Удалить учётную запись",
	Long: `Удаляет учётную запись на сервере вместе со всем избранным.

Операция необратима: восстановить аккаунт или список избранного
после удаления невозможно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			return fmt.Errorf("сначала войдите в систему: artscout auth login")
		}

		if !deleteYes {
			fmt.Print("⚠️  Аккаунт и всё избранное будут удалены безвозвратно. Продолжить? [y/N]: ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Отменено.")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.DeleteAccount(ctx); err != nil {
			return fmt.Errorf("ошибка удаления аккаунта: %w", err)
		}

		fmt.Println("✅ Учётная запись удалена.")
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "удалить без подтверждения")
}
