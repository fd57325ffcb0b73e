// cmd/client/cmd/artist/search.go
package artist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"artscout/cmd/client/cmd/types"
	"artscout/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchJSON bool

var SearchCmd = &cobra.Command{
	Use:   "search <запрос>",
	Short: "Найти художников по имени",
	Long: `Поиск художников в каталоге по имени или его части.

Запрос из нескольких слов можно передать одним аргументом в кавычках
или несколькими аргументами — они будут склеены через пробел.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		query := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		artists, err := app.SearchArtists(ctx, query)
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		if searchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(artists)
		}

		if len(artists) == 0 {
			fmt.Printf("По запросу %q ничего не найдено.\n", query)
			return nil
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		fmt.Printf("Найдено художников: %d\n\n", len(artists))
		for i, a := range artists {
			fmt.Printf("%d. ", i+1)
			bold.Println(a.Name)
			dim.Printf("   ID: %s\n", a.ID)
		}

		return nil
	},
}

func init() {
	SearchCmd.Flags().BoolVar(&searchJSON, "json", false, "вывод в формате JSON")
}
