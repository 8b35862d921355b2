package main

import "github.com/tmaulidane/txn-validation-service/internal/cli"

func main() {
	cli.Execute()
}
