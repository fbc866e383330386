package main

import "github.com/alejoacosta74/binance-stream/cmd"

func main() {
	cmd.Execute()
}
