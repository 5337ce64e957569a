package main

import (
	"github.com/NVIDIA/myapp/pkg/cli"
)

//go:generate go run ../myapp-mangen --dir ../../man

func main() {
	cli.Execute()
}
