package main

import "github.com/mahmedraza1/clipify/internal/cli"

func main() {
	cli.Main()
}
