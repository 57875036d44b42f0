package main

import (
	"fmt"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/veilbyte/obfus/cmd/internal"
	"github.com/veilbyte/obfus/cmd/shufflegen/internal/tmpl"
)

var version = "devel"

func main() {
	var (
		helpFlag     bool
		versionFlag  bool
		exposedFlag  bool
		compressFlag bool
		packageFlag  string
	)
	flags := flag.NewFlagSet("shufflegen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the shufflegen version.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the unshuffle function exposed from the file. It's recommended to only expose from within an internal package.")
	flags.BoolVarP(&compressFlag, "compressed", "c", false, "Payload should be gzip compressed before shuffling, which includes a checksum to help prevent tampering.")
	flags.StringVarP(&packageFlag, "package", "p", "", "Overrides the package name of the generated file, which defaults to the name of the current directory.")
	flags.Usage = func() {
		fmt.Printf(`
shufflegen generates code to embed seed-shuffled (and optionally compressed) data by generating a *.go file based on the input file. This pairs well with go:generate comments.
The name of the generated Go file will be based on the name of the input file, replacing characters that match the regex pattern [^a-zA-Z0-9_] with "_".
For example, given a file called super-secret.txt, a Go file will be created in the current directory called super_secret_txt.go, containing a function called unshuffleSuper_secret_txt.
See the -E flag below to make it an exposed function, and make sure you review the SECURITY notes below if you're unfamiliar with permutation obfuscation.

USAGE:  shufflegen FILE [SEED]

Note: If a seed argument is given, it will be used instead of a securely generated one.

ARGS:
    FILE is the input file to be embedded.
    SEED is optional and may be given as a decimal or 0x-prefixed hex 64-bit value.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Shuffling is intended to hide embedded data from passive binary analysis only, since anyone holding the seed can reverse the permutation — and the seed is stored right next to the shuffled data.
For payloads that need real protection, stage them through the secure package's encrypted buffer instead, and use shuffling only to break up recognizable patterns.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Echo("shufflegen %s", version)
		return
	}

	opts := []tmpl.ParamOpt{
		tmpl.CompressData(compressFlag),
		tmpl.ExposeFunctions(exposedFlag),
		tmpl.PackageName(packageFlag),
	}
	switch flags.NArg() {
	case 0:
		internal.Fatal("Missing required FILE argument")
	case 1:
		opts = append(opts, tmpl.RandomSeed())
	default:
		seed, err := strconv.ParseUint(flags.Arg(1), 0, 64)
		if err != nil {
			internal.Fatal("Failed to parse SEED, must be a decimal or 0x-prefixed hex 64-bit value")
		}
		opts = append(opts, tmpl.UseSeed(seed))
	}
	if err := tmpl.GenerateFile(flags.Arg(0), opts...); err != nil {
		internal.Fatal("Failed to generate file: %v", err)
	}
}
