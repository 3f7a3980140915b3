package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/memory"
)

// NewSyncCmd создаёт CLI-команду для синхронизации локальной истории с сервером.
//
// Команда запрашивает у сервера полную историю измерений текущего пользователя
// и сохраняет её в локальный файл. Дальше историю можно смотреть офлайн:
//
//	bmitrack history --local
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Поведение:
//  1. выполняет запрос History к серверу с access token;
//  2. перезаписывает локальный history store (ReplaceAll);
//  3. сохраняет store в файл;
//  4. выводит: "synced N measurements".
//
// Защита от несовпадения моделей:
// если сервер вернул запись без ID (пустая строка), команда завершится ошибкой —
// это помогает быстро поймать рассинхрон JSON-модели между сервером и клиентом.
func NewSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "sync",
		Short:        "Скачать историю измерений в локальный кэш",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: bmitrack login")
			}

			c := NewAPIClient(app.ServerURL)
			result, err := c.History(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			for i, r := range result.Records {
				// Стоп-кран: если ID пустой — значит модель ответа не совпала с JSON
				if r.ID == "" {
					return fmt.Errorf("sync: server returned record with empty id at index %d (model mismatch)", i)
				}
			}

			store := memory.NewHistory()
			store.ReplaceAll(result.Records)

			path, err := memory.DefaultHistoryPath()
			if err != nil {
				return err
			}
			if err := SaveHistoryToFile(path, store); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d measurements\n", store.Len())
			return nil
		},
	}
}
