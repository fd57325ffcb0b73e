// cmd/client/cmd/artist/detail.go
package artist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	detailJSON     bool
	withArtworks   bool
	withSimilar    bool
	withCategories bool
)

var DetailCmd = &cobra.Command{
	Use:   "detail <artist-id>",
	Short: "Карточка художника",
	Long: `Подробная информация о художнике по его идентификатору.

Флаги --artworks и --similar дополнительно загружают работы художника
и похожих авторов; --categories выводит жанры каждой работы.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		artistID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		detail, err := app.ArtistDetail(ctx, artistID)
		if err != nil {
			return fmt.Errorf("ошибка получения карточки художника: %w", err)
		}

		if detailJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(detail)
		}

		printDetail(detail)

		if withArtworks {
			if err := printArtworks(ctx, app, artistID); err != nil {
				return err
			}
		}

		if withSimilar {
			if err := printSimilar(ctx, app, artistID); err != nil {
				return err
			}
		}

		return nil
	},
}

func printDetail(d client.ArtistDetail) {
	bold := color.New(color.Bold)

	bold.Println(d.Name)
	fmt.Printf("Национальность: %s\n", d.Nationality)

	years := d.Birthday
	if d.Deathday != "" {
		years = fmt.Sprintf("%s — %s", d.Birthday, d.Deathday)
	}
	if years != "" {
		fmt.Printf("Годы жизни:     %s\n", years)
	}

	if d.Biography != "" {
		fmt.Println()
		fmt.Println(d.Biography)
	}
}

func printArtworks(ctx context.Context, app *client.App, artistID string) error {
	artworks, err := app.Artworks(ctx, artistID)
	if err != nil {
		return fmt.Errorf("ошибка получения работ: %w", err)
	}

	fmt.Println()
	color.New(color.Bold).Println("Работы")
	if len(artworks) == 0 {
		fmt.Println("Работы не найдены.")
		return nil
	}

	for i, w := range artworks {
		fmt.Printf("%d. %s (%s)\n", i+1, w.Title, w.Date)
		if withCategories {
			categories, err := app.ArtworkCategories(ctx, w.ID)
			if err != nil {
				fmt.Printf("   ⚠️  жанры недоступны: %v\n", err)
				continue
			}
			for _, c := range categories {
				fmt.Printf("   · %s\n", c.Name)
			}
		}
	}
	return nil
}

func printSimilar(ctx context.Context, app *client.App, artistID string) error {
	similar, err := app.SimilarArtists(ctx, artistID)
	if err != nil {
		return fmt.Errorf("ошибка получения похожих художников: %w", err)
	}

	fmt.Println()
	color.New(color.Bold).Println("Похожие художники")
	if len(similar) == 0 {
		fmt.Println("Похожие художники не найдены.")
		return nil
	}

	for i, a := range similar {
		fmt.Printf("%d. %s (ID: %s)\n", i+1, a.Name, a.ID)
	}
	return nil
}

func init() {
	DetailCmd.Flags().BoolVar(&detailJSON, "json", false, "вывод в формате JSON")
	DetailCmd.Flags().BoolVar(&withArtworks, "artworks", false, "показать работы художника")
	DetailCmd.Flags().BoolVar(&withSimilar, "similar", false, "показать похожих художников")
	DetailCmd.Flags().BoolVar(&withCategories, "categories", false, "показать жанры работ (вместе с --artworks)")
}
