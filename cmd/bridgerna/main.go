package main

import "github.com/ArcInstitute/bridge-rna-designer/internal/cli"

func main() {
	cli.Execute()
}
