package proxy

import (
	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/pkg/errors"
)

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, rpc.ErrInvalidAddress):
		return httperrors.NewBadRequestInvalidAddress(err)
	case errors.Is(err, rpc.ErrProxyRequestFailed):
		return httperrors.NewProxyRequestFailed(err)
	}

	return err
}
