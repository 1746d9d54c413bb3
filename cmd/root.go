package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sheet-agent/internal/display"
	"sheet-agent/internal/sheet"
)

var (
	cfgFile    string
	dsn        string
	DriverName string

	Store   *sheet.Store
	Session *sheet.Session
	Console = display.New()
)

var RootCmd = &cobra.Command{
	Use:   "sheet-agent",
	Short: "A natural-language spreadsheet assistant",
	Long: `
  ____  _   _ _____ _____ _____
 / ___|| | | | ____| ____|_   _|
 \___ \| |_| |  _| |  _|   | |
  ___) |  _  | |___| |___  | |
 |____/|_| |_|_____|_____| |_|

SHEET AGENT - talk to your spreadsheets, by voice or text
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		godotenv.Load()

		cfg, err := GetActiveDBConfig()
		if err != nil {
			return err
		}
		if DriverName == "" {
			DriverName = cfg.Driver
		}
		connStr := viper.GetString("database.dsn")
		if connStr == "" {
			connStr = cfg.DSN
		}

		Store, err = sheet.Open(DriverName, connStr)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		Store.ExportsDir = viper.GetString("settings.exports_dir")
		Session = sheet.NewSession(Store)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if Store != nil {
			Store.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.Context())
	},
}

// resolveTarget maps an optional positional sheet argument to a table
// name, falling back to the first registered spreadsheet.
func resolveTarget(args []string) (string, error) {
	if len(args) > 0 {
		return Session.Resolve(args[0])
	}
	if _, _, err := Session.AutoSelect(); err != nil {
		return "", err
	}
	return Session.Resolve("")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sheet-agent.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database source name, overrides the config")
	RootCmd.PersistentFlags().StringVar(&DriverName, "driver", "", "database driver (sqlite, postgres, mysql, mssql, oracle)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	viper.SetDefault("settings.exports_dir", "exports")
	viper.SetDefault("settings.plots_dir", "plots")
	viper.SetDefault("settings.seed_count", 20)
	viper.SetDefault("voice.max_seconds", 30)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("sheet-agent")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
