package trader

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOStockTrader/config"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/models/analytics"
	"gitlab.com/aoterocom/AOStockTrader/services"
	"gitlab.com/aoterocom/AOStockTrader/ui"
)

// StockTrader runs the command line surface of the simulator.
type StockTrader struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

func NewStockTrader(in io.Reader, out io.Writer, errOut io.Writer) *StockTrader {
	return &StockTrader{
		in:     in,
		out:    out,
		errOut: errOut,
		now:    time.Now,
	}
}

// NewApp builds the stocktrader command line application.
func NewApp(in io.Reader, out io.Writer, errOut io.Writer) *cli.App {
	return NewStockTrader(in, out, errOut).App()
}

func (st *StockTrader) App() *cli.App {
	runFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "first purchase date, YYYY-MM-DD (default today)"},
			&cli.StringFlag{Name: "provider", Usage: "price provider: yahoo, binance or paper"},
			&cli.StringFlag{Name: "pdf", Usage: "also write the chart and ledger to this PDF file"},
			&cli.BoolFlag{Name: "ui", Usage: "show the terminal dashboard"},
		}
	}
	simulateFlags := append([]cli.Flag{
		&cli.StringFlag{Name: "investment", Aliases: []string{"i"}, Usage: "monthly investment", Required: true},
		&cli.StringFlag{Name: "risk", Aliases: []string{"r"}, Usage: "risk level, 0.5 to 2.0", Required: true},
		&cli.StringFlag{Name: "months", Aliases: []string{"m"}, Usage: "months to simulate", Required: true},
	}, runFlags()...)

	return &cli.App{
		Name:      "stocktrader",
		Usage:     "simulate a monthly investment plan over a risk tier of stocks",
		Reader:    st.in,
		Writer:    st.out,
		ErrWriter: st.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultConfigFile, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "env", Usage: "environment file (default $CONF_FILE or conf.env)"},
		},
		Commands: []*cli.Command{
			{
				Name:   "simulate",
				Usage:  "run a simulation from flags",
				Flags:  simulateFlags,
				Action: st.Simulate,
			},
			{
				Name:   "interactive",
				Usage:  "ask for the simulation inputs on the terminal",
				Flags:  runFlags(),
				Action: st.Interactive,
			},
			{
				Name:   "tiers",
				Usage:  "list the risk tiers and their symbols",
				Action: st.Tiers,
			},
		},
	}
}

func (st *StockTrader) Simulate(c *cli.Context) error {
	inputs, err := ui.ParseInputs(c.String("investment"), c.String("risk"), c.String("months"))
	if err != nil {
		return st.fail(err)
	}
	return st.run(c, inputs)
}

func (st *StockTrader) Interactive(c *cli.Context) error {
	inputs, err := ui.PromptInputs(st.in, st.out)
	if err != nil {
		return st.fail(err)
	}
	return st.run(c, inputs)
}

func (st *StockTrader) Tiers(c *cli.Context) error {
	cfg, err := st.loadConfig(c)
	if err != nil {
		return st.fail(err)
	}
	tiers := cfg.TierTable()
	ranges := map[models.RiskTier]string{
		models.RiskTierLow:    "risk < 1.0",
		models.RiskTierMedium: "risk = 1.0",
		models.RiskTierHigh:   "risk > 1.0",
	}
	for _, tier := range models.RiskTiers {
		fmt.Fprintf(st.out, "%-7s %-11s %s\n", tier, ranges[tier], strings.Join(tiers.Symbols(tier), ", "))
	}
	return nil
}

func (st *StockTrader) run(c *cli.Context, inputs ui.Inputs) error {
	cfg, err := st.loadConfig(c)
	if err != nil {
		return st.fail(err)
	}
	if provider := c.String("provider"); provider != "" {
		cfg.Provider = provider
	}
	if pdfOutput := c.String("pdf"); pdfOutput != "" {
		cfg.PDFOutput = pdfOutput
	}

	startDate, err := st.startDate(c.String("start"))
	if err != nil {
		return st.fail(err)
	}
	lookback, err := cfg.LookbackDuration()
	if err != nil {
		return st.fail(fmt.Errorf("%w: %v", models.ErrConfiguration, err))
	}
	provider, err := ProviderFactory(cfg)
	if err != nil {
		return st.fail(err)
	}

	helpers.Logger.Infoln(fmt.Sprintf("🖖🏻 Stock Trader started: %.2f a month, risk %.2f, %d months from %s (%s)",
		inputs.MonthlyInvestment, inputs.Risk, inputs.Months, startDate.Format(models.DateLayout), provider.Name()))

	marketAnalysisService := services.NewMarketAnalysisService(provider, cfg.TierTable(), lookback)
	result, err := marketAnalysisService.Run(c.Context, analytics.SimulationRequest{
		MonthlyInvestment: inputs.MonthlyInvestment,
		Risk:              inputs.Risk,
		Months:            inputs.Months,
		StartDate:         startDate,
	})
	if err != nil {
		return st.fail(err)
	}

	if err := ui.RenderLedger(st.out, result.Purchases, cfg.Currency); err != nil {
		return st.fail(err)
	}
	if err := ui.RenderSummary(st.out, result, cfg.Currency); err != nil {
		return st.fail(err)
	}
	helpers.Logger.Infoln(ui.SummaryLine(result, cfg.Currency))

	if cfg.PDFOutput != "" {
		if err := ui.NewPDFChart(cfg.Currency).WriteFile(cfg.PDFOutput, result.Trends, result.Purchases); err != nil {
			return st.fail(err)
		}
		fmt.Fprintf(st.out, "Chart written to %s\n", cfg.PDFOutput)
	}
	if c.Bool("ui") {
		dashboard := ui.NewTerminalDashboard(result.Trends, result.Purchases, cfg.Currency)
		if err := dashboard.Run(); err != nil {
			return st.fail(err)
		}
	}
	return nil
}

func (st *StockTrader) loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnv(c.String("env")); err != nil {
		return nil, err
	}
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := helpers.ConfigureLogger(cfg.LoggerConfig()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startDate parses the --start flag. Without it the run starts today.
func (st *StockTrader) startDate(value string) (time.Time, error) {
	if value == "" {
		now := st.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	start, err := time.ParseInLocation(models.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date %q is not YYYY-MM-DD", models.ErrInputFormat, value)
	}
	return start, nil
}

// fail is the single error boundary: the error is logged and turned into the exit
// status, 2 for bad input and 1 for anything else.
func (st *StockTrader) fail(err error) error {
	helpers.Logger.Errorln(err.Error())
	code := 1
	if errors.Is(err, models.ErrInputFormat) {
		code = 2
	}
	return cli.Exit("error: "+err.Error(), code)
}
