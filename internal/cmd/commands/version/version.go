package version

import (
	"github.com/ironlog-io/ironlog/internal/cmd/base"
	"github.com/ironlog-io/ironlog/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: ironlog version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
