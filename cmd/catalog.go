package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the content catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the catalog, then print a summary",
	Run: func(_ *cobra.Command, _ []string) {
		validateCatalog()
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func validateCatalog() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	path := viper.GetString("catalog")
	c, err := catalog.Load(path)
	if err != nil {
		logger.Fatal("catalog is not valid", zap.String("catalog", path), zap.Error(err))
	}

	logger.Info("catalog is valid",
		zap.String("catalog", path),
		zap.Int("domains", len(c.Domains)),
		zap.Int("questions", len(c.Questions)),
		zap.Int("roles", len(c.Roles)),
		zap.Int("actions", len(c.Actions)),
		zap.Int("structures", len(c.Structures)),
	)

	renderCatalog(os.Stdout, c, catalog.ParseLanguage(viper.GetString("language")))
}
