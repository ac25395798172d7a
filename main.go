package main

import (
	"github.com/panoshell/panoshell/cmd"
	"github.com/panoshell/panoshell/config"
	"github.com/panoshell/panoshell/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
