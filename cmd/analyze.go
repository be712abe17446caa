package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"investment-advisor/internal/dto"
	"investment-advisor/internal/repository"
	"investment-advisor/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var analyzeProfile dto.InvestmentProfile

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print a recommendation for one investment profile as JSON",
	Example: `  investment-advisor analyze --capital 50000 --period 5 --risk high --target 100000 --sectors Technology,Healthcare`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.Float64Var(&analyzeProfile.CapitalAmount, "capital", 0, "capital to invest, in USD")
	f.IntVar(&analyzeProfile.InvestmentPeriod, "period", 0, "investment horizon in years")
	f.StringSliceVar(&analyzeProfile.Sectors, "sectors", nil, "preferred sectors, comma separated")
	f.StringVar((*string)(&analyzeProfile.RiskTolerance), "risk", string(dto.RiskModerate), "risk tolerance: low, moderate or high")
	f.Float64Var(&analyzeProfile.TargetGrowth, "target", 0, "target portfolio value, in USD")
	f.StringVar(&analyzeProfile.Preferences, "preferences", "", "free-form notes")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := goValidator.New().Struct(analyzeProfile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return err
	}
	defer appDep.Close()

	repo, err := repository.NewRepository(appDep.cfg, appDep.log)
	if err != nil {
		return err
	}
	services := service.NewService(appDep.cfg, appDep.log, repo, appDep.sessionStore)

	result := services.RecommendationService.Analyze(ctx, analyzeProfile)
	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
