package main

import "github.com/skamsie/Domain-Status-Checker/internal/cli"

func main() {
	cli.Execute()
}
