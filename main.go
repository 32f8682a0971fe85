package main

import "github.com/cryptowall/go-wallet/cmd"

func main() {
	cmd.Execute()
}
