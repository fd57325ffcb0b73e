package favorite

import "artscout/internal/artsy"

// firstNonEmpty возвращает первое непустое значение.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// preferredImage выбирает изображение записи: картинка клиента имеет
// приоритет, но плейсхолдеры проигрывают настоящему изображению каталога.
// Клиент приносит плейсхолдеры с экранов поиска и похожих художников.
func preferredImage(callerImage, fetchedImage string) string {
	if callerImage != "" && !isPlaceholder(callerImage) {
		return callerImage
	}
	if fetchedImage != "" {
		return fetchedImage
	}
	return callerImage
}

func isPlaceholder(image string) bool {
	return image == artsy.PlaceholderArtistImage || image == artsy.PlaceholderSimilarImage
}
