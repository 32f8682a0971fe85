package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostBalanceProxyPayload is the body of the raw balance proxy routes.
//
// swagger:model postBalanceProxyPayload
type PostBalanceProxyPayload struct {

	// Address to look up (base58 for Solana, 0x-hex for Ethereum)
	// Required: true
	// Min Length: 1
	Address *string `json:"address"`
}

// Validate validates this post balance proxy payload
func (m *PostBalanceProxyPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	} else if err := validate.MinLength("address", "body", *m.Address, 1); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PutImportMnemonicPayload replaces the session mnemonic.
//
// swagger:model putImportMnemonicPayload
type PutImportMnemonicPayload struct {

	// BIP-39 mnemonic phrase
	// Required: true
	// Min Length: 1
	Mnemonic *string `json:"mnemonic"`
}

// Validate validates this put import mnemonic payload
func (m *PutImportMnemonicPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("mnemonic", "body", m.Mnemonic); err != nil {
		res = append(res, err)
	} else if err := validate.MinLength("mnemonic", "body", *m.Mnemonic, 1); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MnemonicResponse mnemonic response
//
// swagger:model mnemonicResponse
type MnemonicResponse struct {

	// Mnemonic phrase, words separated by a single space
	// Required: true
	Mnemonic *string `json:"mnemonic"`

	// Mnemonic words in order
	// Required: true
	Words []string `json:"words"`
}

// Validate validates this mnemonic response
func (m *MnemonicResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("mnemonic", "body", m.Mnemonic); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("words", "body", m.Words); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// DerivedAccount derived account
//
// swagger:model derivedAccount
type DerivedAccount struct {

	// Public address
	// Required: true
	Address *string `json:"address"`

	// Chain the account was derived for
	// Required: true
	// Enum: [solana ethereum]
	Chain *string `json:"chain"`

	// Derivation path used
	// Required: true
	DerivationPath *string `json:"derivationPath"`

	// Derivation index
	// Required: true
	// Minimum: 0
	Index *int64 `json:"index"`
}

var derivedAccountChainEnum = []interface{}{"solana", "ethereum"}

// Validate validates this derived account
func (m *DerivedAccount) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("chain", "body", *m.Chain, derivedAccountChainEnum, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("derivationPath", "body", m.DerivationPath); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("index", "body", m.Index); err != nil {
		res = append(res, err)
	} else if err := validate.MinimumInt("index", "body", *m.Index, 0, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetAccountsResponse get accounts response
//
// swagger:model getAccountsResponse
type GetAccountsResponse struct {

	// Accounts in generation order
	// Required: true
	Accounts []*DerivedAccount `json:"accounts"`
}

// Validate validates this get accounts response
func (m *GetAccountsResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("accounts", "body", m.Accounts); err != nil {
		res = append(res, err)
	}

	for i := 0; i < len(m.Accounts); i++ {
		if swag.IsZero(m.Accounts[i]) {
			continue
		}
		if err := m.Accounts[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// BalanceRecord balance record
//
// swagger:model balanceRecord
type BalanceRecord struct {

	// Address the balance belongs to
	// Required: true
	Address *string `json:"address"`

	// Balance in whole units (SOL or ETH), empty if never fetched successfully
	Balance string `json:"balance,omitempty"`

	// Chain of the address
	// Required: true
	Chain *string `json:"chain"`

	// Last fetch error for this address, if any
	Error string `json:"error,omitempty"`

	// True while a fetch is in flight
	Pending bool `json:"pending,omitempty"`

	// Balance in base units (lamports or wei)
	Raw string `json:"raw,omitempty"`

	// Time of the last successful fetch
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt,omitempty"`
}

// Validate validates this balance record
func (m *BalanceRecord) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	}

	if !swag.IsZero(m.UpdatedAt) {
		if err := validate.FormatOf("updatedAt", "body", "date-time", m.UpdatedAt.String(), formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetBalancesResponse get balances response
//
// swagger:model getBalancesResponse
type GetBalancesResponse struct {

	// Balance records ordered by address
	// Required: true
	Balances []*BalanceRecord `json:"balances"`
}

// Validate validates this get balances response
func (m *GetBalancesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("balances", "body", m.Balances); err != nil {
		res = append(res, err)
	}

	for i := 0; i < len(m.Balances); i++ {
		if swag.IsZero(m.Balances[i]) {
			continue
		}
		if err := m.Balances[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// CounterResponse counter response
//
// swagger:model counterResponse
type CounterResponse struct {

	// Counter account (base58)
	// Required: true
	Account *string `json:"account"`

	// Current count
	// Required: true
	// Minimum: 0
	Count *int64 `json:"count"`
}

// Validate validates this counter response
func (m *CounterResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("account", "body", m.Account); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("count", "body", m.Count); err != nil {
		res = append(res, err)
	} else if err := validate.MinimumInt("count", "body", *m.Count, 0, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// VersionResponse version response
//
// swagger:model versionResponse
type VersionResponse struct {

	// Build date
	BuildDate string `json:"buildDate,omitempty"`

	// Git commit
	Commit string `json:"commit,omitempty"`

	// Module name
	// Required: true
	Module *string `json:"module"`
}

// Validate validates this version response
func (m *VersionResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("module", "body", m.Module); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
