package trader

import (
	"fmt"
	"strings"

	"gitlab.com/aoterocom/AOStockTrader/config"
	"gitlab.com/aoterocom/AOStockTrader/interfaces"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/providers/binance"
	"gitlab.com/aoterocom/AOStockTrader/providers/paper"
	"gitlab.com/aoterocom/AOStockTrader/providers/yahoo"
)

func ProviderFactory(cfg *config.Config) (interfaces.PriceProvider, error) {

	switch strings.ToLower(cfg.Provider) {
	case "yahoo", "":
		yahooService := yahoo.NewYahooService()
		if cfg.Yahoo.BaseURL != "" {
			yahooService.BaseURL = cfg.Yahoo.BaseURL
		}
		return interfaces.PriceProvider(yahooService), nil
	case "binance":
		binanceService := binance.NewBinanceService(cfg.Binance.APIKey, cfg.Binance.APISecret)
		return interfaces.PriceProvider(binanceService), nil
	case "paper":
		if cfg.PaperDataDir == "" {
			return nil, fmt.Errorf("%w: the paper provider needs paperDataDir", models.ErrConfiguration)
		}
		paperService := paper.NewPaperDirService(cfg.PaperDataDir)
		return interfaces.PriceProvider(paperService), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a known provider", models.ErrConfiguration, cfg.Provider)
	}

}
