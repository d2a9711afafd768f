package main

import (
	"github.com/NVIDIA/appctl/pkg/cli"
)

func main() {
	cli.Execute()
}
