package main

import "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd"

func main() {
	cmd.Execute()
}
