package main

import "github.com/sase-site/sitegen/internal/cli"

func main() {
	cli.Execute()
}
