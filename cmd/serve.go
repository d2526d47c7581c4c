package cmd

import (
	"github.com/Pjt727/studygroup/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the web server",
	Long:  `Runs the web server, configured through PORT, SESSION_TTL, ALLOWED_ORIGINS and LOCAL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			log.WithField("err", err).Error("Invalid server configuration")
			return err
		}
		return server.Serve(cfg)
	},
}

func init() {
	appCmd.AddCommand(serveCmd)
}
