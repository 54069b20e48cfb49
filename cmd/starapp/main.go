package main

import "github.com/aalvaropc/starapp/internal/cli"

func main() {
	cli.Execute()
}
