package tmpl

import (
	"bytes"
	"compress/gzip"
	"crypto/rand"
	_ "embed"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/veilbyte/obfus/pkg/shuffle"
)

var (
	//go:embed shuffle_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

type Params struct {
	Package        string
	Exposed        bool
	Compressed     bool
	FileMethodName string
	SeedString     string
	DataString     string

	seed           uint64
	seedSet        bool
	fileData       []byte
	targetFileName string
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// CompressData indicates that data should be gzip compressed before shuffling.
func CompressData(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Compressed = val[0]
			return nil
		}
		params.Compressed = true
		return nil
	}
}

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// UseSeed sets a shuffle seed to be used instead of generating one randomly.
func UseSeed(seed uint64) ParamOpt {
	return func(params *Params) error {
		params.seed = seed
		params.seedSet = true
		return nil
	}
}

// RandomSeed draws a seed from the OS entropy pool. This is the default.
func RandomSeed() ParamOpt {
	return randomSeed
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// GenerateFile will generate a file embedding the input file as a shuffled payload.
// Various generation options may be passed as zero or more ParamOpt.
func GenerateFile(input string, opts ...ParamOpt) error {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return err
	}
	if err := populateFileData(params, input); err != nil {
		return err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return err
		}
	}

	if !params.seedSet {
		if err := randomSeed(params); err != nil {
			return err
		}
	}
	if err := shuffleData(params); err != nil {
		return err
	}

	out, err := os.Create(params.targetFileName + ".go")
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if err := tmplTemplate.Execute(out, params); err != nil {
		return err
	}
	return nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateFileData(params *Params, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	params.fileData = data
	_, fname := filepath.Split(file)
	params.FileMethodName = fileCleansePattern.ReplaceAllString(unicap(fname), "_")
	params.targetFileName = fileCleansePattern.ReplaceAllString(fname, "_")
	return nil
}

func randomSeed(params *Params) error {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return err
	}
	params.seed = binary.BigEndian.Uint64(buf[:])
	params.seedSet = true
	return nil
}

func shuffleData(params *Params) error {
	if params.Compressed {
		var buf bytes.Buffer
		w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return err
		}
		_, err = w.Write(params.fileData)
		if err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		params.fileData = buf.Bytes()
	}

	data := shuffle.WithSeed(params.seed).Shuffled(params.fileData)
	params.SeedString = fmt.Sprintf("%#x", params.seed)
	params.DataString = fmt.Sprintf("%#v", data)
	return nil
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
