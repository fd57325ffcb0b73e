// cmd/client/cmd/favorite/list.go
package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список избранных художников",
	Long: `Показывает избранных художников, самые свежие сверху.

Если сервер недоступен, список берётся из локального кеша.`,
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

		favorites, err := app.Favorites(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения избранного: %w", err)
		}

		switch listFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(favorites)
		case "table":
			return printFavoritesTable(favorites)
		default:
			return printFavoritesSimple(favorites)
		}
	},
}

func printFavoritesSimple(favorites []client.FavoriteItem) error {
	if len(favorites) == 0 {
		fmt.Println("Избранных художников пока нет.")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	fmt.Printf("Избранных художников: %d\n\n", len(favorites))
	for i, f := range favorites {
		fmt.Printf("%d. ", i+1)
		bold.Print(f.ArtistName)
		if f.Nationality != "" {
			fmt.Printf(" (%s)", f.Nationality)
		}
		fmt.Println()
		dim.Printf("   ID: %s | Добавлен: %s\n", f.ArtistID, f.AddedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func printFavoritesTable(favorites []client.FavoriteItem) error {
	if len(favorites) == 0 {
		fmt.Println("Избранных художников пока нет.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tИмя\tНациональность\tГоды\tДобавлен\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, f := range favorites {
		years := f.Birthday
		if f.Deathday != "" {
			years = fmt.Sprintf("%s–%s", f.Birthday, f.Deathday)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			f.ArtistID,
			f.ArtistName,
			f.Nationality,
			years,
			f.AddedAt.Format("2006-01-02"),
		)
	}

	return w.Flush()
}

func init() {
	ListCmd.Flags().StringVar(&listFormat, "format", "simple", "формат вывода: simple, table, json")
}
