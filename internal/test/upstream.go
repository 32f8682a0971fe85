package test

import (
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const fakeUpstreamSlot = 4242

// FakeUpstream is a JSON-RPC provider answering getBalance, getAccountInfo and eth_getBalance
// from in-memory state. Addresses marked as failing answer with a JSON-RPC error, an unavailable
// provider answers every request with HTTP 503.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	balances map[string]*big.Int
	accounts map[string][]byte
	failing  map[string]bool
	calls    map[string]int

	unavailable bool
}

type fakeRPCRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// NewFakeUpstream starts a fake provider which is shut down on test cleanup.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{
		balances: make(map[string]*big.Int),
		accounts: make(map[string][]byte),
		failing:  make(map[string]bool),
		calls:    make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)

	return f
}

// Upstream returns an upstream config pointing at the fake provider.
func (f *FakeUpstream) Upstream() config.Upstream {
	cfg := config.DefaultServiceConfigFromEnv().Wallet.Solana
	cfg.URL = f.Server.URL
	return cfg
}

func (f *FakeUpstream) SetBalance(address string, balance *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.balances[fakeKey(address)] = new(big.Int).Set(balance)
}

func (f *FakeUpstream) SetAccountData(address string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.accounts[fakeKey(address)] = append([]byte(nil), data...)
}

func (f *FakeUpstream) SetFailing(address string, failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failing[fakeKey(address)] = failing
}

// SetUnavailable makes the whole provider fail with HTTP 503.
func (f *FakeUpstream) SetUnavailable(unavailable bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.unavailable = unavailable
}

// Calls returns how often method was invoked.
func (f *FakeUpstream) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[method]
}

func (f *FakeUpstream) handle(w http.ResponseWriter, r *http.Request) {
	var req fakeRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var address string
	if len(req.Params) > 0 {
		_ = json.Unmarshal(req.Params[0], &address)
	}
	address = fakeKey(address)

	f.mu.Lock()
	f.calls[req.Method]++
	failing := f.failing[address]
	balance, hasBalance := f.balances[address]
	data, hasAccount := f.accounts[address]
	unavailable := f.unavailable
	f.mu.Unlock()

	if unavailable {
		http.Error(w, "provider unavailable", http.StatusServiceUnavailable)
		return
	}

	if failing {
		writeFakeRPC(w, req.ID, nil, map[string]interface{}{"code": -32000, "message": "upstream unavailable"})
		return
	}

	if !hasBalance {
		balance = big.NewInt(0)
	}

	switch req.Method {
	case "getBalance":
		writeFakeRPC(w, req.ID, map[string]interface{}{
			"context": map[string]interface{}{"slot": fakeUpstreamSlot},
			"value":   balance.Uint64(),
		}, nil)
	case "eth_getBalance":
		writeFakeRPC(w, req.ID, hexutil.EncodeBig(balance), nil)
	case "getAccountInfo":
		if !hasAccount {
			writeFakeRPC(w, req.ID, map[string]interface{}{
				"context": map[string]interface{}{"slot": fakeUpstreamSlot},
				"value":   nil,
			}, nil)
			return
		}
		writeFakeRPC(w, req.ID, map[string]interface{}{
			"context": map[string]interface{}{"slot": fakeUpstreamSlot},
			"value": map[string]interface{}{
				"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
				"executable": false,
				"lamports":   balance.Uint64(),
				"owner":      "11111111111111111111111111111111",
				"rentEpoch":  0,
				"space":      len(data),
			},
		}, nil)
	default:
		writeFakeRPC(w, req.ID, nil, map[string]interface{}{"code": -32601, "message": "method not found"})
	}
}

func writeFakeRPC(w http.ResponseWriter, id json.RawMessage, result interface{}, rpcErr interface{}) {
	body := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
	}
	if rpcErr != nil {
		body["error"] = rpcErr
	} else {
		body["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// fakeKey normalizes hex addresses, ethclient sends them lowercased.
func fakeKey(address string) string {
	if strings.HasPrefix(address, "0x") {
		return strings.ToLower(address)
	}
	return address
}
