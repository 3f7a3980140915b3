package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере
// с использованием имени, email, пароля, возраста и хобби.
// Обязательные флаги: --name, --email, --password, --age.
//
// Пример использования:
//
//	bmitrack register --name Alice --email test@example.com --password StrongPass123 --age 30 --hobbies chess
//
// В случае успешной регистрации пользователю выводится сообщение
// и путь, куда идти логиниться.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		name, email, password, hobbies string
		age                            int
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  bmitrack register --name Alice --email test@example.com --password StrongPass123 --age 30 --hobbies chess
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, password, age, hobbies)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful, sign in at %s\n", resp.Redirect)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().StringVar(&hobbies, "hobbies", "", "free-form hobbies")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("age")

	return cmd
}
