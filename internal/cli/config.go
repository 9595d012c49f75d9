package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// 実際に使われる設定をYAMLで表示する（パスワードは伏せる）
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			if cfg.Postgres.Password != "" {
				cfg.Postgres.Password = "********"
			}
			if cfg.DatabaseURL != "" {
				cfg.DatabaseURL = "********"
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}
