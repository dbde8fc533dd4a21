package main

import "github.com/Sternrassler/ptcg-client/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
