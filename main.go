package main

import "github.com/Harish050696/cardvault/cmd"

func main() {
	cmd.Execute()
}
