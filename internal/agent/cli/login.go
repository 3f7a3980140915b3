package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере,
// получает access токен (срок жизни 1 час) и сохраняет его в локальный
// конфигурационный файл.
//
// Обязателен флаг --email. Пароль можно передать флагом --password,
// иначе он будет запрошен интерактивно без эха.
//
// Пример использования:
//
//	bmitrack login --email test@example.com
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access токен)",
		Long: `Логин пользователя.

Пример:
  bmitrack login --email test@example.com
  (пароль будет запрошен интерактивно)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := ReadPassword(cmd)
				if err != nil {
					return err
				}
				password = p
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AccessToken = resp.Token

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved, valid for 1h)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

// readPassword запрашивает пароль у пользователя.
//
// Если stdin — терминал, пароль читается без эха (term.ReadPassword).
// Иначе (пайп, тест) читается одна строка из входа команды.
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
