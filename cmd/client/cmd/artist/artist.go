package artist

import (
	"github.com/spf13/cobra"
)

// ArtistCmd - родительская команда для операций с каталогом художников
var ArtistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Поиск художников и просмотр их работ",
	Long:  `Поиск по каталогу, карточка художника, его работы и похожие авторы.`,
}
