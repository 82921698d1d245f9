package main

import "github.com/tradingwalla/backend/cmd"

func main() {
	cmd.Execute()
}
