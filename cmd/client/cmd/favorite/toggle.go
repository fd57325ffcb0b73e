// cmd/client/cmd/favorite/toggle.go
package favorite

import (
	"context"
	"fmt"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/spf13/cobra"
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle <artist-id>",
	Short: "Добавить или убрать художника из избранного",
	Long: `Переключает статус художника в избранном: добавляет, если его там нет,
и убирает, если он уже добавлен.

Статус меняется сразу, запрос к серверу уходит в фоне. Если сервер
отклонил изменение, статус откатывается к прежнему.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			return fmt.Errorf("сначала войдите в систему: artscout auth login")
		}

		artistID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		detail, err := app.ArtistDetail(ctx, artistID)
		if err != nil {
			return fmt.Errorf("художник не найден: %w", err)
		}

		current, err := app.IsFavorite(ctx, artistID)
		if err != nil {
			return fmt.Errorf("ошибка проверки избранного: %w", err)
		}

		session := app.NewFavoriteSession()
		session.SetInitial(artistID, current)

		outcome := <-session.Toggle(ctx, client.AddFavoriteRequest{
			ArtistID:    artistID,
			ArtistName:  detail.Name,
			ArtistImage: detail.Image,
			Nationality: detail.Nationality,
			Birthday:    detail.Birthday,
			Deathday:    detail.Deathday,
		})

		switch outcome.State {
		case client.StateCommitted:
			if outcome.Favorite {
				fmt.Printf("✅ %s добавлен в избранное.\n", detail.Name)
			} else {
				fmt.Printf("✅ %s убран из избранного.\n", detail.Name)
			}
		case client.StateRolledBack:
			return fmt.Errorf("изменение отклонено сервером: %w", outcome.Err)
		default:
			return fmt.Errorf("неожиданное состояние переключения")
		}

		if session.ConsumeModified() {
			fmt.Println("Список избранного обновлён, кеш будет перечитан при следующем просмотре.")
		}

		return nil
	},
}
