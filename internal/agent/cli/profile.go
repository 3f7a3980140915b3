package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля пользователя.
//
// Команда запрашивает у сервера профиль текущего пользователя
// (имя, возраст, email, хобби) и короткую историю BMI.
//
// Пример:
//
//	bmitrack profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "profile",
		Short:        "Профиль пользователя с историей BMI",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: bmitrack login")
			}

			c := NewAPIClient(app.ServerURL)
			p, err := c.Profile(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "name:    %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "age:     %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "email:   %s\n", p.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "hobbies: %s\n", p.Hobbies)

			if len(p.BmiHistory) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "bmi history: empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "bmi history:")
			for _, e := range p.BmiHistory {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %.2f\n", e.Date.Format("2006-01-02 15:04"), e.Bmi)
			}
			return nil
		},
	}
}
