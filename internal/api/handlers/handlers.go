package handlers

import (
	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/handlers/common"
	"github.com/cryptowall/go-wallet/internal/api/handlers/proxy"
	"github.com/cryptowall/go-wallet/internal/api/handlers/wallet"
	"github.com/labstack/echo/v4"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		proxy.PostEthBalanceRoute(s),
		proxy.PostSolBalanceRoute(s),
		wallet.GetAccountsRoute(s),
		wallet.GetBalancesRoute(s),
		wallet.GetCounterRoute(s),
		wallet.GetMnemonicRoute(s),
		wallet.PostAccountRoute(s),
		wallet.PostMnemonicRoute(s),
		wallet.PostRefreshBalanceRoute(s),
		wallet.PostRefreshAccountBalancesRoute(s),
		wallet.PutMnemonicRoute(s),
	}
}
