package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	shufflegenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	shufflegen := NewAppBuild("shufflegen", "cmd/shufflegen", shufflegenVersion)
	shufflegen.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", shufflegenVersion)
		gb.Env("CGO_ENABLED", "0")
	})
	shufflegen.Variant("windows", "amd64")
	shufflegen.Variant("linux", "amd64")
	shufflegen.Variant("linux", "arm64")
	shufflegen.Variant("darwin", "amd64")
	shufflegen.Variant("darwin", "arm64")
	b.ImportApp(shufflegen)

	b.Execute()
}
