package main

import "github.com/spiralborn/gemdic/pkg/cli"

func main() {
	cli.Execute()
}
