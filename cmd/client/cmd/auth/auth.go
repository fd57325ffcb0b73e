package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с учётной записью
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление учётной записью",
	Long:  `Регистрация, вход, выход, просмотр профиля и удаление аккаунта.`,
}
