package commands

import (
	"errors"
	"io/fs"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"designopt/calculator"
)

const defaultConfigPath = "conf/config.ini"

var (
	cfgPath string
	cfg     *calculator.Config
	jsonOut bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "designopt",
		Short:         "Engineering design evaluation models for multi-objective optimizers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := calculator.LoadConfig(cfgPath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
					return err
				}
				log.WithField("path", cfgPath).Warn("配置文件不存在，使用默认配置")
				c = calculator.DefaultConfig()
			}
			level, err := log.ParseLevel(c.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "ini configuration file")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of a table")

	root.AddCommand(serveCmd(), evalCmd(), optimizeCmd(), boundsCmd())
	return root
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}
