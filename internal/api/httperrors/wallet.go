package httperrors

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/types"
)

var (
	ErrBadRequestInvalidMnemonic = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeMNEMONICINVALID, "The mnemonic does not satisfy the BIP-39 wordlist or checksum.")
	ErrConflictNoMnemonic        = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeMNEMONICMISSING, "No mnemonic has been generated or imported for this session.")
	ErrNotFoundUnknownChain      = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeUNKNOWNCHAIN, "The chain is not supported.")
	ErrNotFoundAccount           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeACCOUNTNOTFOUND, "The address was not derived in this session.")
)

// NewDerivationFailed reports a deterministic derivation failure. Retrying with the same input cannot succeed.
func NewDerivationFailed(err error) *HTTPError {
	e := NewHTTPError(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeDERIVATIONFAILED, "Failed to derive address.")
	e.Internal = err
	return e
}

// NewProxyRequestFailed reports an upstream RPC failure for a single address.
func NewProxyRequestFailed(err error) *HTTPError {
	e := NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypePROXYREQUESTFAILED, "Upstream RPC request failed.")
	e.Internal = err
	return e
}

// NewBadRequestInvalidAddress reports an address that is malformed for the requested chain.
func NewBadRequestInvalidAddress(err error) *HTTPError {
	e := NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeADDRESSINVALID, "The address is malformed for this chain.")
	e.Internal = err
	return e
}
