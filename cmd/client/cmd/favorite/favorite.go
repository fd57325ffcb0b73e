package favorite

import (
	"github.com/spf13/cobra"
)

// FavoriteCmd - родительская команда для операций с избранным
var FavoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Управление избранными художниками",
	Long:    `Список избранных художников, добавление и удаление через toggle.`,
}
