package cli

import (
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/api"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/memory"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient      = api.NewClient
	ReadPassword      = func(cmd *cobra.Command) (string, error) { return readPassword(cmd) }
	SaveHistoryToFile = memory.SaveToFile
	LoadHistoryFile   = memory.LoadFromFile
)
