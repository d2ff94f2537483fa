// Package main is the entry point for the nestshade command.
package main

import (
	"github.com/nestshade/nestshade/cmd"
	"github.com/nestshade/nestshade/config"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
