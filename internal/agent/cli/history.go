package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/memory"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// NewHistoryCmd создаёт CLI-команду для просмотра истории измерений.
//
// По умолчанию история запрашивается с сервера (свежие записи первыми).
// С флагом --local читается локальный кэш, сохранённый командой sync,
// без похода на сервер.
//
// Пример:
//
//	bmitrack history
//	bmitrack history --local
func NewHistoryCmd(app *App) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:          "history",
		Short:        "История измерений BMI",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.Measurement

			if local {
				path, err := memory.DefaultHistoryPath()
				if err != nil {
					return err
				}
				store := memory.NewHistory()
				if err := LoadHistoryFile(path, store); err != nil {
					return err
				}
				records = store.List()
			} else {
				if app.Creds == nil || app.Creds.AccessToken == "" {
					return fmt.Errorf("no access_token, run: bmitrack login")
				}
				c := NewAPIClient(app.ServerURL)
				resp, err := c.History(app.Creds.AccessToken)
				if err != nil {
					return err
				}
				records = resp.Records
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no measurements yet")
				return nil
			}

			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  bmi=%.2f  height=%.1f  weight=%.1f\n",
					r.Date.Format("2006-01-02 15:04"), r.Bmi, r.Height, r.Weight)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "read cached history instead of the server")

	return cmd
}
