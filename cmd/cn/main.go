package main

import "github.com/vango-dev/cn/internal/cli"

func main() {
	cli.Execute()
}
