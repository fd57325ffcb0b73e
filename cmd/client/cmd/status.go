// cmd/client/cmd/status.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"artscout/cmd/client/cmd/artist"
	"artscout/cmd/client/cmd/auth"
	"artscout/cmd/client/cmd/favorite"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние клиента и соединения с сервером",
	Long: `Показывает адрес сервера, доступность соединения и данные
сохранённой сессии.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Состояние ArtScout ===")
		fmt.Println()
		fmt.Printf("Сервер: %s\n", cfg.ServerAddress)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			fmt.Printf("⚠️  Сервер недоступен: %v\n", err)
			fmt.Println("Избранное будет читаться из локального кеша.")
		} else {
			fmt.Println("✓ Соединение с сервером установлено")
		}

		fmt.Println()
		if app.IsAuthenticated() {
			fullname, email := app.RememberedUser()
			if fullname != "" {
				fmt.Printf("Сессия: %s (%s)\n", fullname, email)
			} else {
				fmt.Println("Сессия: токен сохранён")
			}
		} else {
			fmt.Println("Сессия: не выполнен вход (artscout auth login)")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.MeCmd)
	auth.AuthCmd.AddCommand(auth.DeleteCmd)

	// Добавляем команды каталога
	rootCmd.AddCommand(artist.ArtistCmd)
	artist.ArtistCmd.AddCommand(artist.SearchCmd)
	artist.ArtistCmd.AddCommand(artist.DetailCmd)

	// Добавляем команды избранного
	rootCmd.AddCommand(favorite.FavoriteCmd)
	favorite.FavoriteCmd.AddCommand(favorite.ListCmd)
	favorite.FavoriteCmd.AddCommand(favorite.ToggleCmd)
}
