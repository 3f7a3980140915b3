package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	agentapi "github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/api"
	calc "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/bmi"
)

// NewAddCmd создаёт CLI-команду для отправки измерения BMI.
//
// Команда:
//  1. считает BMI локально по росту (см) и весу (кг);
//  2. показывает значение и категорию;
//  3. отправляет измерение на сервер с access токеном.
//
// Пороги категорий общие с сервером (shared/bmi).
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Пример:
//
//	bmitrack add --height 170 --weight 65 --age 30 --gender F
func NewAddCmd(app *App) *cobra.Command {
	var (
		height, weight float64
		age            int
		gender         string
	)

	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Посчитать BMI и отправить измерение на сервер",
		SilenceUsage: true,
		Long: `Считает BMI локально и отправляет измерение на сервер.

Пример:
  bmitrack add --height 170 --weight 65 --age 30 --gender F
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: bmitrack login")
			}
			if height <= 0 || weight <= 0 {
				return fmt.Errorf("height and weight must be positive")
			}

			bmi := calc.Compute(height, weight)
			fmt.Fprintf(cmd.OutOrStdout(), "bmi=%.2f (%s)\n", bmi, calc.Category(bmi))

			c := NewAPIClient(app.ServerURL)
			resp, err := c.SubmitMeasurement(agentapi.CalcRequest{
				Age:    age,
				Gender: gender,
				Height: height,
				Weight: weight,
				Bmi:    bmi,
			}, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved (id=%s)\n", resp.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "gender (free form)")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("weight")
	cmd.MarkFlagRequired("age")

	return cmd
}
