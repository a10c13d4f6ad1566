package main

import (
	"os"

	"github.com/jesseduffield/pathcheck/pkg/cli"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"
)

func main() {
	info := cli.BuildInfo{
		Version:     version,
		Commit:      commit,
		Date:        date,
		BuildSource: buildSource,
	}

	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr, info))
}
